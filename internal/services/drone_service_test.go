package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

type memDroneStore struct {
	mu      sync.Mutex
	drones  map[uuid.UUID]*models.Drone
	flights map[uuid.UUID][]*models.DroneFlight
}

func newMemDroneStore() *memDroneStore {
	return &memDroneStore{
		drones:  map[uuid.UUID]*models.Drone{},
		flights: map[uuid.UUID][]*models.DroneFlight{},
	}
}

func (m *memDroneStore) Create(_ context.Context, d *models.Drone) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drones[d.ID] = d
	return nil
}

func (m *memDroneStore) GetByID(_ context.Context, id uuid.UUID) (*models.Drone, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drones[id], nil
}

func (m *memDroneStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*models.Drone, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Drone
	for _, d := range m.drones {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDroneStore) Update(_ context.Context, d *models.Drone) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drones[d.ID] = d
	return nil
}

func (m *memDroneStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drones, id)
	return nil
}

func (m *memDroneStore) CreateFlight(_ context.Context, f *models.DroneFlight) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flights[f.DroneID] = append(m.flights[f.DroneID], f)
	return nil
}

func (m *memDroneStore) ListFlights(_ context.Context, droneID uuid.UUID) ([]*models.DroneFlight, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flights[droneID], nil
}

func registerTestDrone(t *testing.T, svc *DroneService, owner *models.User) *models.Drone {
	t.Helper()
	drone := &models.Drone{
		Name:      "Surveyor One",
		Model:     "Mavic 3",
		DroneType: models.DroneTypeQuadcopter,
	}
	require.NoError(t, svc.Register(context.Background(), owner, drone))
	return drone
}

func TestRegisterDroneDefaultsStatus(t *testing.T) {
	svc := NewDroneService(newMemDroneStore())
	owner := testUser()

	drone := registerTestDrone(t, svc, owner)
	assert.Equal(t, models.DroneStatusActive, drone.Status)
	assert.Equal(t, owner.ID, drone.UserID)
	assert.NotEqual(t, uuid.Nil, drone.ID)
}

func TestRegisterDroneRejectsUnknownType(t *testing.T) {
	svc := NewDroneService(newMemDroneStore())
	err := svc.Register(context.Background(), testUser(), &models.Drone{
		Name:      "Bad",
		Model:     "X",
		DroneType: "zeppelin",
	})
	assert.Error(t, err)
}

func TestDroneOwnershipEnforced(t *testing.T) {
	svc := NewDroneService(newMemDroneStore())
	owner := testUser()
	owner.IsStaff = false
	stranger := testUser()
	stranger.IsStaff = false

	drone := registerTestDrone(t, svc, owner)

	_, err := svc.Get(context.Background(), drone.ID, stranger)
	assert.ErrorIs(t, err, ErrNotDroneOwner)

	err = svc.Delete(context.Background(), drone.ID, stranger)
	assert.ErrorIs(t, err, ErrNotDroneOwner)

	_, err = svc.Get(context.Background(), drone.ID, owner)
	assert.NoError(t, err)
}

func TestStaffCanAccessAnyDrone(t *testing.T) {
	svc := NewDroneService(newMemDroneStore())
	owner := testUser()
	owner.IsStaff = false
	staff := testUser()

	drone := registerTestDrone(t, svc, owner)

	got, err := svc.Get(context.Background(), drone.ID, staff)
	require.NoError(t, err)
	assert.Equal(t, drone.ID, got.ID)
}

func TestGetMissingDrone(t *testing.T) {
	svc := NewDroneService(newMemDroneStore())
	_, err := svc.Get(context.Background(), uuid.New(), testUser())
	assert.ErrorIs(t, err, ErrDroneNotFound)
}

func TestLogAndListFlights(t *testing.T) {
	svc := NewDroneService(newMemDroneStore())
	owner := testUser()
	drone := registerTestDrone(t, svc, owner)

	flight := &models.DroneFlight{
		FlightDate:      time.Now(),
		DurationMinutes: 25,
		Location:        "Abidjan Plateau",
	}
	require.NoError(t, svc.LogFlight(context.Background(), drone.ID, owner, flight))
	assert.Equal(t, owner.ID, flight.PilotID)
	assert.Equal(t, drone.ID, flight.DroneID)

	flights, err := svc.Flights(context.Background(), drone.ID, owner)
	require.NoError(t, err)
	assert.Len(t, flights, 1)
}
