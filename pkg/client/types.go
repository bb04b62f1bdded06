package client

import "time"

// Wire types mirror the server's JSON contract. They are defined here
// rather than shared with the server so external consumers only depend
// on this package.

// User is the authenticated profile returned by auth endpoints.
type User struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name,omitempty"`
	AvatarURL          string    `json:"avatar_url,omitempty"`
	Role               string    `json:"role"`
	SubscriptionPlan   string    `json:"subscription_plan"`
	SubscriptionStatus string    `json:"subscription_status"`
	SimulationsUsed    int       `json:"simulations_used"`
	SimulationsLimit   int       `json:"simulations_limit"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// GeometryConfig describes the simulated part.
type GeometryConfig struct {
	Type     string  `json:"type"`
	FileURL  string  `json:"file_url,omitempty"`
	FileName string  `json:"file_name,omitempty"`
	FileSize int64   `json:"file_size,omitempty"`
	LengthMm float64 `json:"length_mm,omitempty"`
	RadiusMm float64 `json:"radius_mm,omitempty"`
}

// BoundaryConditions holds the thermal parameters for a run.
type BoundaryConditions struct {
	InitialTemp           float64 `json:"initial_temp"`
	AmbientTemp           float64 `json:"ambient_temp"`
	CoolingType           string  `json:"cooling_type"`
	ConvectionCoefficient float64 `json:"convection_coefficient"`
	FluidType             string  `json:"fluid_type,omitempty"`
	FluidVelocity         float64 `json:"fluid_velocity,omitempty"`
	CriticalParameter     float64 `json:"critical_parameter,omitempty"`
}

// Simulation is one compute job.
type Simulation struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id"`
	Name               string             `json:"name"`
	Description        string             `json:"description,omitempty"`
	GeometryType       string             `json:"geometry_type"`
	Geometry           GeometryConfig     `json:"geometry_config"`
	MaterialID         string             `json:"material_id,omitempty"`
	BoundaryConditions BoundaryConditions `json:"boundary_conditions"`
	MeshDensity        string             `json:"mesh_density"`
	Status             string             `json:"status"`
	Progress           int                `json:"progress"`
	CreatedAt          time.Time          `json:"created_at"`
	StartedAt          *time.Time         `json:"started_at,omitempty"`
	CompletedAt        *time.Time         `json:"completed_at,omitempty"`
}

// FieldPoint is one sampled temperature field location.
type FieldPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ConvergenceMetrics reports how the solver converged.
type ConvergenceMetrics struct {
	Iterations      int     `json:"iterations"`
	Loss            float64 `json:"loss"`
	ConvergenceRate float64 `json:"convergence_rate"`
}

// SimulationResult is the immutable output of a completed run.
type SimulationResult struct {
	ID                 string             `json:"id"`
	SimulationID       string             `json:"simulation_id"`
	MaxTemperature     float64            `json:"max_temperature"`
	MinTemperature     float64            `json:"min_temperature"`
	PressureDrop       float64            `json:"pressure_drop"`
	ThermalEfficiency  float64            `json:"thermal_efficiency"`
	UncertaintyScore   float64            `json:"uncertainty_score"`
	DomainShiftAlert   bool               `json:"domain_shift_alert"`
	TemperatureData    []FieldPoint       `json:"temperature_data"`
	ConvergenceMetrics ConvergenceMetrics `json:"convergence_metrics"`
	CreatedAt          time.Time          `json:"created_at"`
}

// Material is a catalog entry.
type Material struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	ThermalConductivity float64   `json:"thermal_conductivity"`
	SpecificHeat        float64   `json:"specific_heat"`
	Density             float64   `json:"density"`
	MeltingPoint        *float64  `json:"melting_point,omitempty"`
	ColorHex            string    `json:"color_hex"`
	IsPublic            bool      `json:"is_public"`
	CreatedAt           time.Time `json:"created_at"`
}

// CreateSimulationInput is the payload for CreateSimulation.
type CreateSimulationInput struct {
	Name               string             `json:"name"`
	Description        string             `json:"description,omitempty"`
	GeometryType       string             `json:"geometry_type"`
	Geometry           GeometryConfig     `json:"geometry_config"`
	MaterialID         string             `json:"material_id,omitempty"`
	BoundaryConditions BoundaryConditions `json:"boundary_conditions"`
	MeshDensity        string             `json:"mesh_density,omitempty"`
}

// ListSimulationsOptions filters and paginates ListSimulations.
type ListSimulationsOptions struct {
	Status string
	Page   int
	Limit  int
}

// Pagination describes one page of a list response.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// SimulationPage is one page of simulations.
type SimulationPage struct {
	Data       []Simulation `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

// RunOutcome is the terminal outcome of StartSimulation.
type RunOutcome struct {
	Success          bool              `json:"success"`
	SimulationID     string            `json:"simulationId"`
	Status           string            `json:"status"`
	Results          *SimulationResult `json:"results,omitempty"`
	UncertaintyScore float64           `json:"uncertainty_score"`
	DomainShiftAlert bool              `json:"domain_shift_alert"`
}

// UploadedGeometry describes a stored geometry file.
type UploadedGeometry struct {
	Success  bool   `json:"success"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	Path     string `json:"path"`
}

// Event is one live-update frame from a watch subscription.
type Event struct {
	SimulationID string    `json:"simulation_id"`
	Status       string    `json:"status"`
	Progress     int       `json:"progress"`
	Timestamp    time.Time `json:"timestamp"`
}
