package ports

import (
	"context"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

// SolverConfig is the input handed to the compute backend.
type SolverConfig struct {
	Geometry           domain.GeometryConfig
	BoundaryConditions domain.BoundaryConditions
	MaterialID         string
	MeshDensity        domain.MeshDensity
}

// SolverOutput is the raw compute result plus the derived reliability
// signals. The orchestrator turns it into a SimulationResult row.
type SolverOutput struct {
	MaxTemperature     float64
	MinTemperature     float64
	PressureDrop       float64
	ThermalEfficiency  float64
	TemperatureData    []domain.FieldPoint
	ConvergenceMetrics domain.ConvergenceMetrics
	UncertaintyScore   float64
	DomainShiftAlert   bool
}

// Solver is the compute backend boundary. The current implementation is a
// mock producing structured random data; a numerical backend can be
// substituted without touching lifecycle, quota, or state-machine code.
type Solver interface {
	Run(ctx context.Context, cfg SolverConfig) (*SolverOutput, error)
}
