package dtos

import (
	"time"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

type DroneRequest struct {
	Name               string     `json:"name" validate:"required,max=100"`
	Model              string     `json:"model" validate:"required,max=100"`
	Brand              string     `json:"brand" validate:"omitempty,max=100"`
	DroneType          string     `json:"drone_type" validate:"required,oneof=quadcopter hexacopter octocopter fixed_wing helicopter other"`
	SerialNumber       string     `json:"serial_number" validate:"omitempty,max=100"`
	WeightKg           *float64   `json:"weight_kg" validate:"omitempty,gt=0"`
	MaxAltitudeM       *int       `json:"max_altitude_m" validate:"omitempty,gt=0"`
	MaxFlightTimeMin   *int       `json:"max_flight_time_min" validate:"omitempty,gt=0"`
	Status             string     `json:"status" validate:"omitempty,oneof=active maintenance inactive retired"`
	RegistrationNumber string     `json:"registration_number" validate:"omitempty,max=50"`
	PurchaseDate       *time.Time `json:"purchase_date"`
}

func (r *DroneRequest) ToModel() *models.Drone {
	return &models.Drone{
		Name:               r.Name,
		Model:              r.Model,
		Brand:              r.Brand,
		DroneType:          r.DroneType,
		SerialNumber:       r.SerialNumber,
		WeightKg:           r.WeightKg,
		MaxAltitudeM:       r.MaxAltitudeM,
		MaxFlightTimeMin:   r.MaxFlightTimeMin,
		Status:             r.Status,
		RegistrationNumber: r.RegistrationNumber,
		PurchaseDate:       r.PurchaseDate,
	}
}

type FlightRequest struct {
	FlightDate      time.Time `json:"flight_date" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	Location        string    `json:"location" validate:"required,max=255"`
	Purpose         string    `json:"purpose" validate:"omitempty,max=255"`
	Notes           string    `json:"notes" validate:"omitempty,max=2000"`
}

func (r *FlightRequest) ToModel() *models.DroneFlight {
	return &models.DroneFlight{
		FlightDate:      r.FlightDate,
		DurationMinutes: r.DurationMinutes,
		Location:        r.Location,
		Purpose:         r.Purpose,
		Notes:           r.Notes,
	}
}

type DroneListResponse struct {
	Drones []*models.Drone `json:"drones"`
	Count  int             `json:"count"`
}

type FlightListResponse struct {
	Flights []*models.DroneFlight `json:"flights"`
	Count   int                   `json:"count"`
}
