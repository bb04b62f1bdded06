package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

// MaterialRepository is the postgres implementation of ports.MaterialRepository.
type MaterialRepository struct {
	db *sql.DB
}

func NewMaterialRepository(db *sql.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

const materialColumns = `id, name, category, thermal_conductivity, specific_heat, density,
	melting_point, color_hex, is_public, coalesce(created_by::text, ''), created_at`

// List returns public materials plus private ones created by userID.
func (r *MaterialRepository) List(ctx context.Context, userID string) ([]*domain.Material, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `SELECT ` + materialColumns + `
		  FROM materials
		 WHERE is_public OR created_by = nullif($1, '')::uuid
		 ORDER BY category, name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var items []*domain.Material
	for rows.Next() {
		m := &domain.Material{}
		var melting sql.NullFloat64
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.ThermalConductivity, &m.SpecificHeat,
			&m.Density, &melting, &m.ColorHex, &m.IsPublic, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("list materials: %w", err)
		}
		if melting.Valid {
			m.MeltingPoint = &melting.Float64
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return items, nil
}

func (r *MaterialRepository) FindByID(ctx context.Context, id string) (*domain.Material, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	m := &domain.Material{}
	var melting sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Category, &m.ThermalConductivity, &m.SpecificHeat,
			&m.Density, &melting, &m.ColorHex, &m.IsPublic, &m.CreatedBy, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("find material: %w", err)
	}
	if melting.Valid {
		m.MeltingPoint = &melting.Float64
	}
	return m, nil
}

func (r *MaterialRepository) Create(ctx context.Context, m *domain.Material) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		INSERT INTO materials (id, name, category, thermal_conductivity, specific_heat,
			density, melting_point, color_hex, is_public, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, nullif($10, '')::uuid, $11)`

	var melting any
	if m.MeltingPoint != nil {
		melting = *m.MeltingPoint
	}

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Category, m.ThermalConductivity, m.SpecificHeat,
		m.Density, melting, m.ColorHex, m.IsPublic, m.CreatedBy, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}
