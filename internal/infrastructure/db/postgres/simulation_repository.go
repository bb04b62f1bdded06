package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/heatflow/simulation-system/internal/core/domain"
	"github.com/heatflow/simulation-system/internal/core/ports"
)

// SimulationRepository is the postgres implementation of
// ports.SimulationRepository. Geometry and boundary conditions live in
// jsonb columns; everything the state machine touches is relational.
type SimulationRepository struct {
	db *sql.DB
}

func NewSimulationRepository(db *sql.DB) *SimulationRepository {
	return &SimulationRepository{db: db}
}

const simulationColumns = `id, user_id, name, coalesce(description, ''), geometry_type,
	geometry_config, coalesce(material_id::text, ''), boundary_conditions, mesh_density,
	status, progress, coalesce(estimated_duration, 0), created_at, started_at, completed_at`

func (r *SimulationRepository) Create(ctx context.Context, s *domain.Simulation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	geometry, err := json.Marshal(s.Geometry)
	if err != nil {
		return fmt.Errorf("create simulation: marshal geometry: %w", err)
	}
	boundary, err := json.Marshal(s.BoundaryConditions)
	if err != nil {
		return fmt.Errorf("create simulation: marshal boundary conditions: %w", err)
	}

	query := `
		INSERT INTO simulations (id, user_id, name, description, geometry_type,
			geometry_config, material_id, boundary_conditions, mesh_density,
			status, progress, created_at)
		VALUES ($1, $2, $3, nullif($4, ''), $5, $6, nullif($7, '')::uuid, $8, $9, $10, $11, $12)`

	_, err = r.db.ExecContext(ctx, query,
		s.ID, s.UserID, s.Name, s.Description, s.GeometryType,
		geometry, s.MaterialID, boundary, s.MeshDensity,
		s.Status, s.Progress, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create simulation: %w", err)
	}
	return nil
}

// FindByID retrieves a simulation. A non-empty userID scopes the query to
// the owner, making unowned rows look missing.
func (r *SimulationRepository) FindByID(ctx context.Context, id string, userID string) (*domain.Simulation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `SELECT ` + simulationColumns + ` FROM simulations WHERE id = $1`
	args := []any{id}
	if userID != "" {
		query += ` AND user_id = $2`
		args = append(args, userID)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	s, err := scanSimulation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSimulationNotFound
		}
		return nil, fmt.Errorf("find simulation: %w", err)
	}
	return s, nil
}

func (r *SimulationRepository) List(ctx context.Context, filter ports.ListSimulationsFilter) ([]*domain.Simulation, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	where := ` WHERE user_id = $1`
	args := []any{filter.UserID}
	if filter.Status != "" {
		where += ` AND status = $2`
		args = append(args, filter.Status)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM simulations`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count simulations: %w", err)
	}

	query := `SELECT ` + simulationColumns + ` FROM simulations` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list simulations: %w", err)
	}
	defer rows.Close()

	var items []*domain.Simulation
	for rows.Next() {
		s, err := scanSimulation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("list simulations: %w", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list simulations: %w", err)
	}
	return items, total, nil
}

func (r *SimulationRepository) Delete(ctx context.Context, id string, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM simulations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete simulation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrSimulationNotFound
	}
	return nil
}

// TransitionStatus is a compare-and-set on the status column. Entering
// running also stamps started_at and resets progress.
func (r *SimulationRepository) TransitionStatus(ctx context.Context, id string, from, to domain.SimulationStatus, at time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		UPDATE simulations
		   SET status = $1,
		       started_at = CASE WHEN $1 = 'running' THEN $2 ELSE started_at END,
		       progress = CASE WHEN $1 = 'running' THEN 0 ELSE progress END
		 WHERE id = $3 AND status = $4`

	res, err := r.db.ExecContext(ctx, query, to, at, id, from)
	if err != nil {
		return false, fmt.Errorf("transition status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("transition status: %w", err)
	}
	return n == 1, nil
}

func (r *SimulationRepository) GetStatus(ctx context.Context, id string) (domain.SimulationStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var status domain.SimulationStatus
	err := r.db.QueryRowContext(ctx, `SELECT status FROM simulations WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrSimulationNotFound
		}
		return "", fmt.Errorf("get status: %w", err)
	}
	return status, nil
}

// UpdateProgress writes one progress sample. Only running simulations are
// touched so a late write cannot clobber a terminal state.
func (r *SimulationRepository) UpdateProgress(ctx context.Context, id string, progress int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`UPDATE simulations SET progress = $2 WHERE id = $1 AND status = 'running'`, id, progress)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

func (r *SimulationRepository) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE simulations SET status = 'completed', progress = 100, completed_at = $2
		  WHERE id = $1 AND status = 'running'`, id, at)
	if err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("mark completed: %w", domain.ErrInvalidTransition)
	}
	return nil
}

func (r *SimulationRepository) MarkFailed(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`UPDATE simulations SET status = 'failed', progress = 0 WHERE id = $1 AND status = 'running'`, id)
	if err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	return nil
}

// PatchGeometry merges uploaded file metadata into the jsonb geometry
// config of an owned simulation.
func (r *SimulationRepository) PatchGeometry(ctx context.Context, id string, userID string, geom domain.UploadedGeometry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	patch, err := json.Marshal(map[string]any{
		"file_url":  geom.URL,
		"file_name": geom.FileName,
		"file_size": geom.Size,
	})
	if err != nil {
		return fmt.Errorf("patch geometry: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE simulations SET geometry_config = geometry_config || $3::jsonb
		  WHERE id = $1 AND user_id = $2`, id, userID, patch)
	if err != nil {
		return fmt.Errorf("patch geometry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrSimulationNotFound
	}
	return nil
}

// scanSimulation works for both *sql.Row and *sql.Rows.
func scanSimulation(row interface{ Scan(...any) error }) (*domain.Simulation, error) {
	s := &domain.Simulation{}
	var geometry, boundary []byte
	var startedAt, completedAt sql.NullTime

	err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &s.Description, &s.GeometryType,
		&geometry, &s.MaterialID, &boundary, &s.MeshDensity,
		&s.Status, &s.Progress, &s.EstimatedDuration, &s.CreatedAt, &startedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(geometry, &s.Geometry); err != nil {
		return nil, fmt.Errorf("unmarshal geometry: %w", err)
	}
	if err := json.Unmarshal(boundary, &s.BoundaryConditions); err != nil {
		return nil, fmt.Errorf("unmarshal boundary conditions: %w", err)
	}
	if startedAt.Valid {
		s.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		s.CompletedAt = &completedAt.Time
	}
	return s, nil
}
