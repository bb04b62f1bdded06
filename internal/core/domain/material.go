package domain

import "time"

// Material is a catalog entry describing the thermal properties of a
// substance available to simulation configs. Public materials are visible
// to everyone; private ones only to their creator.
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
	CreatedBy           string    `json:"created_by,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
