package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/heatflow/simulation-system/internal/core/domain"
	"github.com/heatflow/simulation-system/internal/core/ports"
)

const (
	defaultTicks         = 10
	defaultTickInterval  = 500 * time.Millisecond
	defaultSolverTimeout = 30 * time.Second
	cleanupTimeout       = 5 * time.Second
	maxListLimit         = 100
)

// RunConfig tunes the run loop. Zero values fall back to defaults.
type RunConfig struct {
	// Ticks is the number of progress intervals between running and completed.
	Ticks int
	// TickInterval is the wait between progress updates.
	TickInterval time.Duration
	// SolverTimeout bounds the compute step.
	SolverTimeout time.Duration
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Ticks <= 0 {
		c.Ticks = defaultTicks
	}
	if c.TickInterval <= 0 {
		c.TickInterval = defaultTickInterval
	}
	if c.SolverTimeout <= 0 {
		c.SolverTimeout = defaultSolverTimeout
	}
	return c
}

// SimulationService orchestrates the simulation lifecycle: admission,
// state transitions, the compute step, and result persistence.
type SimulationService struct {
	users    ports.UserRepository
	sims     ports.SimulationRepository
	results  ports.ResultRepository
	solver   ports.Solver
	sink     ports.ProgressSink
	notifier ports.ProgressNotifier
	cfg      RunConfig
	logger   zerolog.Logger
}

func NewSimulationService(
	users ports.UserRepository,
	sims ports.SimulationRepository,
	results ports.ResultRepository,
	solver ports.Solver,
	sink ports.ProgressSink,
	notifier ports.ProgressNotifier,
	cfg RunConfig,
	logger zerolog.Logger,
) *SimulationService {
	return &SimulationService{
		users:    users,
		sims:     sims,
		results:  results,
		solver:   solver,
		sink:     sink,
		notifier: notifier,
		cfg:      cfg.withDefaults(),
		logger:   logger,
	}
}

// CreateSimulation inserts a new simulation in pending state with progress 0.
func (s *SimulationService) CreateSimulation(ctx context.Context, input ports.CreateSimulationInput) (*domain.Simulation, error) {
	mesh := domain.MeshDensity(input.MeshDensity)
	switch mesh {
	case domain.MeshLow, domain.MeshMedium, domain.MeshHigh:
	case "":
		mesh = domain.MeshMedium
	default:
		return nil, fmt.Errorf("create simulation: unknown mesh density %q", input.MeshDensity)
	}

	sim := &domain.Simulation{
		ID:                 uuid.NewString(),
		UserID:             input.UserID,
		Name:               input.Name,
		Description:        input.Description,
		GeometryType:       input.GeometryType,
		Geometry:           input.Geometry,
		MaterialID:         input.MaterialID,
		BoundaryConditions: input.BoundaryConditions,
		MeshDensity:        mesh,
		Status:             domain.StatusPending,
		Progress:           0,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.sims.Create(ctx, sim); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create simulation")
		return nil, err
	}

	s.logger.Info().Str("simulation_id", sim.ID).Str("user_id", sim.UserID).Msg("simulation created")
	return sim, nil
}

func (s *SimulationService) GetSimulation(ctx context.Context, userID, simulationID string) (*domain.Simulation, error) {
	return s.sims.FindByID(ctx, simulationID, userID)
}

func (s *SimulationService) ListSimulations(ctx context.Context, input ports.ListSimulationsInput) (*ports.ListSimulationsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, total, err := s.sims.List(ctx, ports.ListSimulationsFilter{
		UserID: input.UserID,
		Status: input.Status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListSimulationsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *SimulationService) DeleteSimulation(ctx context.Context, userID, simulationID string) error {
	return s.sims.Delete(ctx, simulationID, userID)
}

// RunSimulation admits, executes and completes one run.
//
// Admission order is fixed: known user, active subscription, free quota
// slot, then an owned simulation in pending state. The quota slot is
// reserved atomically at admission and released again when the run fails
// or is cancelled, so a completed run consumes exactly one slot.
func (s *SimulationService) RunSimulation(ctx context.Context, input ports.RunSimulationInput) (*ports.RunSimulationResult, error) {
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("run simulation: %w", err)
	}
	if !user.SubscriptionIsActive() {
		return nil, domain.ErrSubscriptionInactive
	}

	reserved, err := s.users.TryReserveSlot(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("run simulation: reserve slot: %w", err)
	}
	if !reserved {
		return nil, domain.ErrQuotaExceeded
	}

	sim, err := s.sims.FindByID(ctx, input.SimulationID, user.ID)
	if err != nil {
		s.releaseSlot(ctx, user.ID)
		return nil, err
	}
	if sim.Status != domain.StatusPending {
		s.releaseSlot(ctx, user.ID)
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, sim.Status, domain.StatusRunning)
	}

	startedAt := time.Now().UTC()
	ok, err := s.sims.TransitionStatus(ctx, sim.ID, domain.StatusPending, domain.StatusRunning, startedAt)
	if err != nil {
		s.releaseSlot(ctx, user.ID)
		return nil, fmt.Errorf("run simulation: transition to running: %w", err)
	}
	if !ok {
		// lost the race against a concurrent admission or cancel
		s.releaseSlot(ctx, user.ID)
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, sim.Status, domain.StatusRunning)
	}

	s.publish(ctx, sim.ID, domain.StatusRunning, 0)
	s.logger.Info().Str("simulation_id", sim.ID).Str("user_id", user.ID).Msg("simulation running")

	cancelled, err := s.progressLoop(ctx, sim.ID)
	if err != nil {
		return nil, s.fail(ctx, sim.ID, user.ID, err)
	}
	if cancelled {
		s.releaseSlot(ctx, user.ID)
		s.logger.Info().Str("simulation_id", sim.ID).Msg("simulation cancelled mid-run")
		return &ports.RunSimulationResult{SimulationID: sim.ID, Status: domain.StatusCancelled}, nil
	}

	solveCtx, cancel := context.WithTimeout(ctx, s.cfg.SolverTimeout)
	out, err := s.solver.Run(solveCtx, ports.SolverConfig{
		Geometry:           sim.Geometry,
		BoundaryConditions: sim.BoundaryConditions,
		MaterialID:         sim.MaterialID,
		MeshDensity:        sim.MeshDensity,
	})
	cancel()
	if err != nil {
		return nil, s.fail(ctx, sim.ID, user.ID, fmt.Errorf("compute: %w", err))
	}

	completedAt := time.Now().UTC()
	if err := s.sims.MarkCompleted(ctx, sim.ID, completedAt); err != nil {
		return nil, s.fail(ctx, sim.ID, user.ID, fmt.Errorf("mark completed: %w", err))
	}

	result := &domain.SimulationResult{
		ID:                 uuid.NewString(),
		SimulationID:       sim.ID,
		MaxTemperature:     out.MaxTemperature,
		MinTemperature:     out.MinTemperature,
		PressureDrop:       out.PressureDrop,
		ThermalEfficiency:  out.ThermalEfficiency,
		UncertaintyScore:   out.UncertaintyScore,
		DomainShiftAlert:   out.DomainShiftAlert,
		TemperatureData:    out.TemperatureData,
		ConvergenceMetrics: out.ConvergenceMetrics,
		CreatedAt:          completedAt,
	}
	if err := s.results.Insert(ctx, result); err != nil {
		return nil, s.fail(ctx, sim.ID, user.ID, fmt.Errorf("persist result: %w", err))
	}

	s.publish(ctx, sim.ID, domain.StatusCompleted, 100)
	s.logger.Info().
		Str("simulation_id", sim.ID).
		Bool("domain_shift_alert", result.DomainShiftAlert).
		Float64("uncertainty_score", result.UncertaintyScore).
		Msg("simulation completed")

	return &ports.RunSimulationResult{
		SimulationID: sim.ID,
		Status:       domain.StatusCompleted,
		Result:       result,
	}, nil
}

// progressLoop waits out the configured ticks, dispatching fire-and-forget
// progress updates between waits. It re-reads the stored status each tick
// so an administrative cancel takes effect cooperatively.
func (s *SimulationService) progressLoop(ctx context.Context, simulationID string) (cancelled bool, err error) {
	for i := 1; i < s.cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(s.cfg.TickInterval):
		}

		status, err := s.sims.GetStatus(ctx, simulationID)
		if err != nil {
			s.logger.Warn().Err(err).Str("simulation_id", simulationID).Msg("status check failed, continuing")
		} else if status == domain.StatusCancelled {
			return true, nil
		}

		s.sink.Enqueue(ports.SimulationEvent{
			SimulationID: simulationID,
			Status:       domain.StatusRunning,
			Progress:     i * 100 / s.cfg.Ticks,
			Timestamp:    time.Now().UTC(),
		})
	}
	return false, nil
}

// CancelSimulation flips a non-terminal simulation to cancelled. A running
// simulation is not interrupted; its run loop notices the flag between
// ticks and stops.
func (s *SimulationService) CancelSimulation(ctx context.Context, userID, simulationID string) error {
	sim, err := s.sims.FindByID(ctx, simulationID, userID)
	if err != nil {
		return err
	}
	if !sim.Status.CanTransitionTo(domain.StatusCancelled) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, sim.Status, domain.StatusCancelled)
	}

	ok, err := s.sims.TransitionStatus(ctx, sim.ID, sim.Status, domain.StatusCancelled, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cancel simulation: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, sim.Status, domain.StatusCancelled)
	}

	s.publish(ctx, sim.ID, domain.StatusCancelled, sim.Progress)
	s.logger.Info().Str("simulation_id", sim.ID).Msg("simulation cancelled")
	return nil
}

func (s *SimulationService) GetResult(ctx context.Context, userID, simulationID string) (*domain.SimulationResult, error) {
	if _, err := s.sims.FindByID(ctx, simulationID, userID); err != nil {
		return nil, err
	}
	return s.results.FindBySimulationID(ctx, simulationID)
}

// fail best-effort marks the simulation failed and releases the quota
// slot. The original error is always returned; failures of the failure
// path itself are logged and never escalated. The cause may be the
// request context itself (client disconnect), so the cleanup writes run
// detached from it or they would never land.
func (s *SimulationService) fail(ctx context.Context, simulationID, userID string, cause error) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := s.sims.MarkFailed(ctx, simulationID); err != nil {
		s.logger.Warn().Err(err).Str("simulation_id", simulationID).Msg("failed to mark simulation failed")
	}
	s.releaseSlot(ctx, userID)
	s.publish(ctx, simulationID, domain.StatusFailed, 0)
	s.logger.Error().Err(cause).Str("simulation_id", simulationID).Msg("simulation failed")
	return cause
}

// releaseSlot returns a reserved quota slot. Detached from the caller's
// context for the same reason as fail.
func (s *SimulationService) releaseSlot(ctx context.Context, userID string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := s.users.ReleaseSlot(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to release quota slot")
	}
}

// publish sends a live-update frame. Delivery is non-critical telemetry.
func (s *SimulationService) publish(ctx context.Context, simulationID string, status domain.SimulationStatus, progress int) {
	event := ports.SimulationEvent{
		SimulationID: simulationID,
		Status:       status,
		Progress:     progress,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.notifier.Publish(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("simulation_id", simulationID).Msg("failed to publish simulation event")
	}
}
