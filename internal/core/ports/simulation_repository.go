package ports

import (
	"context"
	"time"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

// ListSimulationsFilter carries query parameters for listing simulations.
// UserID is always enforced by the service layer (ownership scoping).
type ListSimulationsFilter struct {
	UserID string // owner scope, always non-empty
	Status string // optional: filter by status
	Page   int    // 1-based
	Limit  int    // max rows per page (capped at 100 by service)
}

// SimulationRepository defines persistence operations for simulations.
type SimulationRepository interface {
	Create(ctx context.Context, s *domain.Simulation) error

	// FindByID retrieves a simulation by id. When userID is non-empty the
	// query is additionally scoped to the owning user; an unowned row is
	// indistinguishable from a missing one.
	FindByID(ctx context.Context, id string, userID string) (*domain.Simulation, error)

	List(ctx context.Context, filter ListSimulationsFilter) ([]*domain.Simulation, int64, error)
	Delete(ctx context.Context, id string, userID string) error

	// TransitionStatus performs a compare-and-set on the status column,
	// returning false when the row was not in the expected state. This is
	// the gate that makes concurrent admission of the same simulation
	// impossible.
	TransitionStatus(ctx context.Context, id string, from, to domain.SimulationStatus, at time.Time) (bool, error)

	GetStatus(ctx context.Context, id string) (domain.SimulationStatus, error)
	UpdateProgress(ctx context.Context, id string, progress int) error
	MarkCompleted(ctx context.Context, id string, at time.Time) error
	MarkFailed(ctx context.Context, id string) error

	// PatchGeometry merges uploaded file metadata into the geometry config
	// of an owned simulation.
	PatchGeometry(ctx context.Context, id string, userID string, geom domain.UploadedGeometry) error
}
