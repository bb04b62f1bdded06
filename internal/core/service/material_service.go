package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/heatflow/simulation-system/internal/core/domain"
	"github.com/heatflow/simulation-system/internal/core/ports"
)

// MaterialService exposes the material catalog.
type MaterialService struct {
	materials ports.MaterialRepository
	logger    zerolog.Logger
}

func NewMaterialService(materials ports.MaterialRepository, logger zerolog.Logger) *MaterialService {
	return &MaterialService{materials: materials, logger: logger}
}

func (s *MaterialService) ListMaterials(ctx context.Context, userID string) ([]*domain.Material, error) {
	return s.materials.List(ctx, userID)
}

func (s *MaterialService) GetMaterial(ctx context.Context, id string) (*domain.Material, error) {
	return s.materials.FindByID(ctx, id)
}

func (s *MaterialService) CreateMaterial(ctx context.Context, m *domain.Material) (*domain.Material, error) {
	if m.Name == "" || m.Category == "" {
		return nil, fmt.Errorf("%w: name and category are required", domain.ErrBadRequest)
	}

	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	if m.ColorHex == "" {
		m.ColorHex = "#808080"
	}

	if err := s.materials.Create(ctx, m); err != nil {
		s.logger.Error().Err(err).Str("name", m.Name).Msg("failed to create material")
		return nil, err
	}
	return m, nil
}
