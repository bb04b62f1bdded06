package handler

import (
	"github.com/heatflow/simulation-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type geometryConfigRequest struct {
	Type     string  `json:"type"`
	FileURL  string  `json:"file_url,omitempty"`
	FileName string  `json:"file_name,omitempty"`
	FileSize int64   `json:"file_size,omitempty"`
	LengthMm float64 `json:"length_mm,omitempty"`
	RadiusMm float64 `json:"radius_mm,omitempty"`
}

type boundaryConditionsRequest struct {
	InitialTemp           float64 `json:"initial_temp"            validate:"required"`
	AmbientTemp           float64 `json:"ambient_temp"`
	CoolingType           string  `json:"cooling_type"            validate:"required"`
	ConvectionCoefficient float64 `json:"convection_coefficient"  validate:"gte=0"`
	FluidType             string  `json:"fluid_type,omitempty"`
	FluidVelocity         float64 `json:"fluid_velocity,omitempty" validate:"gte=0"`
	CriticalParameter     float64 `json:"critical_parameter,omitempty"`
}

type createSimulationRequest struct {
	Name               string                    `json:"name"                validate:"required"`
	Description        string                    `json:"description,omitempty"`
	GeometryType       string                    `json:"geometry_type"       validate:"required"`
	Geometry           geometryConfigRequest     `json:"geometry_config"`
	MaterialID         string                    `json:"material_id,omitempty"`
	BoundaryConditions boundaryConditionsRequest `json:"boundary_conditions" validate:"required"`
	MeshDensity        string                    `json:"mesh_density,omitempty" validate:"omitempty,oneof=low medium high"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listSimulationsResponse struct {
	Data       []*domain.Simulation `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}

// simulateRequest matches the original serverless endpoint contract: the
// body names the simulation to run. A config object is accepted for
// backwards compatibility but the stored simulation is authoritative.
type simulateRequest struct {
	SimulationID string `json:"simulationId" validate:"required"`
}

// simulateResponse preserves the original wire contract verbatim,
// including its mixed key casing.
type simulateResponse struct {
	Success          bool                     `json:"success"`
	SimulationID     string                   `json:"simulationId"`
	Status           string                   `json:"status"`
	Results          *domain.SimulationResult `json:"results,omitempty"`
	UncertaintyScore float64                  `json:"uncertainty_score"`
	DomainShiftAlert bool                     `json:"domain_shift_alert"`
}

// uploadGeometryRequest matches the original serverless upload contract.
// userId is accepted for backwards compatibility and only cross-checked
// against the token subject.
type uploadGeometryRequest struct {
	FileName     string `json:"fileName" validate:"required"`
	FileData     string `json:"fileData" validate:"required"`
	FileType     string `json:"fileType,omitempty"`
	UserID       string `json:"userId,omitempty"`
	SimulationID string `json:"simulationId,omitempty"`
}

type uploadGeometryResponse struct {
	Success  bool   `json:"success"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	Path     string `json:"path"`
}

type createMaterialRequest struct {
	Name                string   `json:"name"                 validate:"required"`
	Category            string   `json:"category"             validate:"required"`
	ThermalConductivity float64  `json:"thermal_conductivity" validate:"gte=0"`
	SpecificHeat        float64  `json:"specific_heat"        validate:"gte=0"`
	Density             float64  `json:"density"              validate:"gte=0"`
	MeltingPoint        *float64 `json:"melting_point,omitempty"`
	ColorHex            string   `json:"color_hex,omitempty"`
	IsPublic            bool     `json:"is_public"`
}

type registerRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}
