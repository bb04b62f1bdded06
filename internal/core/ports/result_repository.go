package ports

import (
	"context"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

// ResultRepository persists the one-to-one result row of a completed run.
type ResultRepository interface {
	Insert(ctx context.Context, r *domain.SimulationResult) error
	FindBySimulationID(ctx context.Context, simulationID string) (*domain.SimulationResult, error)
}
