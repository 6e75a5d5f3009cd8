package models

import (
	"time"

	"github.com/google/uuid"
)

// Drone types accepted by the registry.
const (
	DroneTypeQuadcopter = "quadcopter"
	DroneTypeHexacopter = "hexacopter"
	DroneTypeOctocopter = "octocopter"
	DroneTypeFixedWing  = "fixed_wing"
	DroneTypeHelicopter = "helicopter"
	DroneTypeOther      = "other"
)

// Drone lifecycle statuses.
const (
	DroneStatusActive      = "active"
	DroneStatusMaintenance = "maintenance"
	DroneStatusInactive    = "inactive"
	DroneStatusRetired     = "retired"
)

// Drone is an aircraft registered by a user. Only the owning user (or
// staff) may read or mutate it.
type Drone struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	Name               string     `json:"name"`
	Model              string     `json:"model"`
	Brand              string     `json:"brand,omitempty"`
	DroneType          string     `json:"drone_type"`
	SerialNumber       string     `json:"serial_number,omitempty"`
	WeightKg           *float64   `json:"weight_kg,omitempty"`
	MaxAltitudeM       *int       `json:"max_altitude_m,omitempty"`
	MaxFlightTimeMin   *int       `json:"max_flight_time_min,omitempty"`
	Status             string     `json:"status"`
	RegistrationNumber string     `json:"registration_number,omitempty"`
	PurchaseDate       *time.Time `json:"purchase_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// DroneFlight is one flight-log entry for a drone.
type DroneFlight struct {
	ID              uuid.UUID `json:"id"`
	DroneID         uuid.UUID `json:"drone_id"`
	PilotID         uuid.UUID `json:"pilot_id"`
	FlightDate      time.Time `json:"flight_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
	Purpose         string    `json:"purpose,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ValidDroneType reports whether t is one of the accepted drone types.
func ValidDroneType(t string) bool {
	switch t {
	case DroneTypeQuadcopter, DroneTypeHexacopter, DroneTypeOctocopter,
		DroneTypeFixedWing, DroneTypeHelicopter, DroneTypeOther:
		return true
	}
	return false
}

// ValidDroneStatus reports whether s is one of the accepted statuses.
func ValidDroneStatus(s string) bool {
	switch s {
	case DroneStatusActive, DroneStatusMaintenance, DroneStatusInactive, DroneStatusRetired:
		return true
	}
	return false
}
