package ports

import (
	"context"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

// AuthService stands in for the external identity provider: it issues
// bearer tokens and resolves them back to user profiles.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

// MaterialService exposes the read-mostly material catalog.
type MaterialService interface {
	ListMaterials(ctx context.Context, userID string) ([]*domain.Material, error)
	GetMaterial(ctx context.Context, id string) (*domain.Material, error)
	CreateMaterial(ctx context.Context, m *domain.Material) (*domain.Material, error)
}
