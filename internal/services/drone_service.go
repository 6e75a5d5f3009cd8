package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

var (
	ErrDroneNotFound = errors.New("drone not found")
	ErrNotDroneOwner = errors.New("drone belongs to another user")
)

// DroneStore is the drone and flight-log persistence.
type DroneStore interface {
	Create(ctx context.Context, d *models.Drone) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Drone, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Drone, error)
	Update(ctx context.Context, d *models.Drone) error
	Delete(ctx context.Context, id uuid.UUID) error
	CreateFlight(ctx context.Context, f *models.DroneFlight) error
	ListFlights(ctx context.Context, droneID uuid.UUID) ([]*models.DroneFlight, error)
}

// DroneService enforces ownership: a drone is only visible to and
// mutable by the user who registered it, staff excepted.
type DroneService struct {
	drones DroneStore
}

func NewDroneService(drones DroneStore) *DroneService {
	return &DroneService{drones: drones}
}

// ownedDrone loads a drone and checks the caller may touch it.
func (s *DroneService) ownedDrone(ctx context.Context, droneID uuid.UUID, caller *models.User) (*models.Drone, error) {
	drone, err := s.drones.GetByID(ctx, droneID)
	if err != nil {
		return nil, err
	}
	if drone == nil {
		return nil, ErrDroneNotFound
	}
	if drone.UserID != caller.ID && !caller.IsStaff {
		return nil, ErrNotDroneOwner
	}
	return drone, nil
}

func (s *DroneService) Register(ctx context.Context, owner *models.User, d *models.Drone) error {
	d.ID = uuid.New()
	d.UserID = owner.ID
	if d.Status == "" {
		d.Status = models.DroneStatusActive
	}
	if !models.ValidDroneType(d.DroneType) {
		return fmt.Errorf("unknown drone type %q", d.DroneType)
	}
	if !models.ValidDroneStatus(d.Status) {
		return fmt.Errorf("unknown drone status %q", d.Status)
	}
	return s.drones.Create(ctx, d)
}

func (s *DroneService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Drone, error) {
	return s.drones.ListByUser(ctx, userID)
}

func (s *DroneService) Get(ctx context.Context, droneID uuid.UUID, caller *models.User) (*models.Drone, error) {
	return s.ownedDrone(ctx, droneID, caller)
}

func (s *DroneService) Update(ctx context.Context, droneID uuid.UUID, caller *models.User, update *models.Drone) (*models.Drone, error) {
	drone, err := s.ownedDrone(ctx, droneID, caller)
	if err != nil {
		return nil, err
	}
	if !models.ValidDroneType(update.DroneType) {
		return nil, fmt.Errorf("unknown drone type %q", update.DroneType)
	}
	if !models.ValidDroneStatus(update.Status) {
		return nil, fmt.Errorf("unknown drone status %q", update.Status)
	}

	drone.Name = update.Name
	drone.Model = update.Model
	drone.Brand = update.Brand
	drone.DroneType = update.DroneType
	drone.SerialNumber = update.SerialNumber
	drone.WeightKg = update.WeightKg
	drone.MaxAltitudeM = update.MaxAltitudeM
	drone.MaxFlightTimeMin = update.MaxFlightTimeMin
	drone.Status = update.Status
	drone.RegistrationNumber = update.RegistrationNumber
	drone.PurchaseDate = update.PurchaseDate

	if err := s.drones.Update(ctx, drone); err != nil {
		return nil, err
	}
	return drone, nil
}

func (s *DroneService) Delete(ctx context.Context, droneID uuid.UUID, caller *models.User) error {
	if _, err := s.ownedDrone(ctx, droneID, caller); err != nil {
		return err
	}
	return s.drones.Delete(ctx, droneID)
}

func (s *DroneService) LogFlight(ctx context.Context, droneID uuid.UUID, caller *models.User, f *models.DroneFlight) error {
	if _, err := s.ownedDrone(ctx, droneID, caller); err != nil {
		return err
	}
	f.ID = uuid.New()
	f.DroneID = droneID
	f.PilotID = caller.ID
	return s.drones.CreateFlight(ctx, f)
}

func (s *DroneService) Flights(ctx context.Context, droneID uuid.UUID, caller *models.User) ([]*models.DroneFlight, error) {
	if _, err := s.ownedDrone(ctx, droneID, caller); err != nil {
		return nil, err
	}
	return s.drones.ListFlights(ctx, droneID)
}
