package ports

import (
	"context"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

// UserRepository defines persistence operations for user profiles and the
// shared usage counter.
type UserRepository interface {
	// Upsert creates the profile row on first sign-in or returns the
	// existing one (identity provider subject = primary key).
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// TryReserveSlot atomically increments simulations_used when the user
	// is still under their limit, returning false otherwise. The check and
	// increment happen in a single stored procedure so two concurrent runs
	// at the limit boundary cannot both pass.
	TryReserveSlot(ctx context.Context, userID string) (bool, error)

	// ReleaseSlot decrements simulations_used, never below zero. Used when
	// a reserved run fails or is cancelled before completing.
	ReleaseSlot(ctx context.Context, userID string) error
}
