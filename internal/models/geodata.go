package models

import (
	"time"

	"github.com/google/uuid"
)

// Airport types used by the reference data set.
const (
	AirportTypeInternational = "international"
	AirportTypeDomestic      = "domestic"
	AirportTypeAerodrome     = "aerodrome"
	AirportTypeMilitary      = "military"
	AirportTypePrivate       = "private"
)

// Protected area kinds.
const (
	AreaKindNaturalReserve = "natural_reserve"
	AreaKindNationalPark   = "national_park"
)

// Airport is a no-fly reference point. Drone flight is restricted inside
// RadiusKm of the airport's coordinates.
type Airport struct {
	ID          uuid.UUID `json:"id"`
	AirportID   string    `json:"airport_id"`
	Name        string    `json:"name"`
	Code        string    `json:"code,omitempty"`
	AirportType string    `json:"airport_type"`
	City        string    `json:"city,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	RadiusKm    float64   `json:"radius_km"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProtectedArea is a polygonal no-fly zone (natural reserve or national
// park). Coordinates holds the polygon vertices as [lat, lng] pairs and is
// stored as jsonb.
type ProtectedArea struct {
	ID          uuid.UUID    `json:"id"`
	AreaID      string       `json:"area_id"`
	Name        string       `json:"name"`
	Kind        string       `json:"kind"`
	AreaKm2     *float64     `json:"area_km2,omitempty"`
	Description string       `json:"description,omitempty"`
	Coordinates [][2]float64 `json:"coordinates"`
	IsActive    bool         `json:"is_active"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
