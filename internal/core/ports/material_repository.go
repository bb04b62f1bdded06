package ports

import (
	"context"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

// MaterialRepository provides access to the material catalog. List returns
// public materials plus those created by userID.
type MaterialRepository interface {
	List(ctx context.Context, userID string) ([]*domain.Material, error)
	FindByID(ctx context.Context, id string) (*domain.Material, error)
	Create(ctx context.Context, m *domain.Material) error
}
