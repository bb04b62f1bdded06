package domain

import "time"

// SimulationStatus represents the lifecycle state of a simulation run.
type SimulationStatus string

const (
	StatusPending   SimulationStatus = "pending"
	StatusRunning   SimulationStatus = "running"
	StatusCompleted SimulationStatus = "completed"
	StatusFailed    SimulationStatus = "failed"
	StatusCancelled SimulationStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// completed, failed and cancelled are terminal.
var validTransitions = map[SimulationStatus][]SimulationStatus{
	StatusPending: {StatusRunning, StatusCancelled},
	StatusRunning: {StatusCompleted, StatusFailed, StatusCancelled},
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s SimulationStatus) CanTransitionTo(next SimulationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s SimulationStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// MeshDensity selects the solver discretisation level.
type MeshDensity string

const (
	MeshLow    MeshDensity = "low"
	MeshMedium MeshDensity = "medium"
	MeshHigh   MeshDensity = "high"
)

// GeometryConfig describes the part being simulated: a parametric shape or
// an uploaded CAD file referenced by URL.
type GeometryConfig struct {
	Type     string  `json:"type"`
	FileURL  string  `json:"file_url,omitempty"`
	FileName string  `json:"file_name,omitempty"`
	FileSize int64   `json:"file_size,omitempty"`
	LengthMm float64 `json:"length_mm,omitempty"`
	RadiusMm float64 `json:"radius_mm,omitempty"`
}

// BoundaryConditions holds the thermal boundary parameters for a run.
type BoundaryConditions struct {
	InitialTemp           float64 `json:"initial_temp"`
	AmbientTemp           float64 `json:"ambient_temp"`
	CoolingType           string  `json:"cooling_type"`
	ConvectionCoefficient float64 `json:"convection_coefficient"`
	FluidType             string  `json:"fluid_type,omitempty"`
	FluidVelocity         float64 `json:"fluid_velocity,omitempty"`
	CriticalParameter     float64 `json:"critical_parameter,omitempty"`
}

// Simulation is the core aggregate root: one requested compute job owned by
// exactly one user.
type Simulation struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id"`
	Name               string             `json:"name"`
	Description        string             `json:"description,omitempty"`
	GeometryType       string             `json:"geometry_type"`
	Geometry           GeometryConfig     `json:"geometry_config"`
	MaterialID         string             `json:"material_id,omitempty"`
	BoundaryConditions BoundaryConditions `json:"boundary_conditions"`
	MeshDensity        MeshDensity        `json:"mesh_density"`
	Status             SimulationStatus   `json:"status"`
	Progress           int                `json:"progress"`
	EstimatedDuration  int                `json:"estimated_duration,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	StartedAt          *time.Time         `json:"started_at,omitempty"`
	CompletedAt        *time.Time         `json:"completed_at,omitempty"`
}
