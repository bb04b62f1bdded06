package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

// ResultRepository is the postgres implementation of ports.ResultRepository.
type ResultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) Insert(ctx context.Context, res *domain.SimulationResult) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	points, err := json.Marshal(res.TemperatureData)
	if err != nil {
		return fmt.Errorf("insert result: marshal temperature data: %w", err)
	}
	convergence, err := json.Marshal(res.ConvergenceMetrics)
	if err != nil {
		return fmt.Errorf("insert result: marshal convergence metrics: %w", err)
	}

	query := `
		INSERT INTO simulation_results (id, simulation_id, max_temperature, min_temperature,
			pressure_drop, thermal_efficiency, uncertainty_score, domain_shift_alert,
			temperature_data, convergence_metrics, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.db.ExecContext(ctx, query,
		res.ID, res.SimulationID, res.MaxTemperature, res.MinTemperature,
		res.PressureDrop, res.ThermalEfficiency, res.UncertaintyScore, res.DomainShiftAlert,
		points, convergence, res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (r *ResultRepository) FindBySimulationID(ctx context.Context, simulationID string) (*domain.SimulationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		SELECT id, simulation_id, max_temperature, min_temperature, pressure_drop,
		       thermal_efficiency, uncertainty_score, domain_shift_alert,
		       temperature_data, convergence_metrics, created_at
		  FROM simulation_results
		 WHERE simulation_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`

	res := &domain.SimulationResult{}
	var points, convergence []byte
	err := r.db.QueryRowContext(ctx, query, simulationID).Scan(
		&res.ID, &res.SimulationID, &res.MaxTemperature, &res.MinTemperature, &res.PressureDrop,
		&res.ThermalEfficiency, &res.UncertaintyScore, &res.DomainShiftAlert,
		&points, &convergence, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResultNotFound
		}
		return nil, fmt.Errorf("find result: %w", err)
	}

	if err := json.Unmarshal(points, &res.TemperatureData); err != nil {
		return nil, fmt.Errorf("find result: unmarshal temperature data: %w", err)
	}
	if err := json.Unmarshal(convergence, &res.ConvergenceMetrics); err != nil {
		return nil, fmt.Errorf("find result: unmarshal convergence metrics: %w", err)
	}
	return res, nil
}
