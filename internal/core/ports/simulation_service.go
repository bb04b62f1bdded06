package ports

import (
	"context"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

// CreateSimulationInput carries all data needed to create a new simulation.
type CreateSimulationInput struct {
	UserID             string
	Name               string
	Description        string
	GeometryType       string
	Geometry           domain.GeometryConfig
	MaterialID         string
	BoundaryConditions domain.BoundaryConditions
	MeshDensity        string
}

// RunSimulationInput identifies the run to admit. UserID always comes from
// the verified token, never from the request body.
type RunSimulationInput struct {
	UserID       string
	SimulationID string
}

// RunSimulationResult is returned after a run reaches a terminal state.
type RunSimulationResult struct {
	SimulationID string
	Status       domain.SimulationStatus
	Result       *domain.SimulationResult
}

// ListSimulationsInput carries parameters for the list endpoint.
type ListSimulationsInput struct {
	UserID string
	Status string
	Page   int
	Limit  int
}

// ListSimulationsResult is returned by ListSimulations.
type ListSimulationsResult struct {
	Items      []*domain.Simulation
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// SimulationService defines use-case operations for simulations.
type SimulationService interface {
	CreateSimulation(ctx context.Context, input CreateSimulationInput) (*domain.Simulation, error)
	GetSimulation(ctx context.Context, userID, simulationID string) (*domain.Simulation, error)
	ListSimulations(ctx context.Context, input ListSimulationsInput) (*ListSimulationsResult, error)
	DeleteSimulation(ctx context.Context, userID, simulationID string) error

	// RunSimulation performs admission checks, drives the run to a terminal
	// state, and returns the persisted result.
	RunSimulation(ctx context.Context, input RunSimulationInput) (*RunSimulationResult, error)

	// CancelSimulation flips the stored status to cancelled. It marks
	// intent: the run loop notices the flag between ticks and stops; an
	// in-flight tick may still land a progress write afterwards.
	CancelSimulation(ctx context.Context, userID, simulationID string) error

	GetResult(ctx context.Context, userID, simulationID string) (*domain.SimulationResult, error)
}
