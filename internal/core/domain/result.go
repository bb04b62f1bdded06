package domain

import "time"

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

// SimulationResult is the one-to-one child of a completed simulation.
// It is written exactly once, at the moment the run completes, and is
// immutable thereafter.
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
