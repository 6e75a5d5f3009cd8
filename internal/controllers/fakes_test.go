package controllers

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

// In-memory stores backing the handler tests. They mirror the Postgres
// repositories' contracts, including the (nil, nil) miss convention.

type fakeUserStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*models.User
	profiles map[uuid.UUID]*models.UserProfile
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:    map[uuid.UUID]*models.User{},
		profiles: map[uuid.UUID]*models.UserProfile{},
	}
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.CreatedAt = time.Now()
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	u, err := f.GetByEmail(ctx, email)
	return u != nil, err
}

func (f *fakeUserStore) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.PasswordHash = hash
	}
	return nil
}

func (f *fakeUserStore) UpdateProfileFields(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.users[u.ID]; ok {
		existing.FirstName = u.FirstName
		existing.LastName = u.LastName
		existing.Phone = u.Phone
	}
	return nil
}

func (f *fakeUserStore) GetProfile(_ context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profiles[userID], nil
}

func (f *fakeUserStore) UpsertProfile(_ context.Context, p *models.UserProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[p.UserID] = p
	return nil
}

type fakeBlacklist struct {
	mu      sync.Mutex
	entries map[string]*models.BlacklistedToken
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{entries: map[string]*models.BlacklistedToken{}}
}

func (f *fakeBlacklist) Blacklist(_ context.Context, t *models.BlacklistedToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[t.TokenID]; !ok {
		f.entries[t.TokenID] = t
	}
	return nil
}

func (f *fakeBlacklist) IsBlacklisted(_ context.Context, tokenID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[tokenID]
	return ok && entry.ExpiresAt.After(time.Now()), nil
}

func (f *fakeBlacklist) size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

type fakeResetStore struct {
	mu     sync.Mutex
	tokens map[string]*models.PasswordResetToken
}

func newFakeResetStore() *fakeResetStore {
	return &fakeResetStore{tokens: map[string]*models.PasswordResetToken{}}
}

func (f *fakeResetStore) Create(_ context.Context, t *models.PasswordResetToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.CreatedAt = time.Now()
	f.tokens[t.Token] = t
	return nil
}

func (f *fakeResetStore) GetByToken(_ context.Context, token string) (*models.PasswordResetToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens[token], nil
}

func (f *fakeResetStore) MarkUsed(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tokens {
		if t.ID == id {
			t.IsUsed = true
		}
	}
	return nil
}

func (f *fakeResetStore) InvalidateForUser(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tokens {
		if t.UserID == userID {
			t.IsUsed = true
		}
	}
	return nil
}

type fakeDroneStore struct {
	mu      sync.Mutex
	drones  map[uuid.UUID]*models.Drone
	flights map[uuid.UUID][]*models.DroneFlight
}

func newFakeDroneStore() *fakeDroneStore {
	return &fakeDroneStore{
		drones:  map[uuid.UUID]*models.Drone{},
		flights: map[uuid.UUID][]*models.DroneFlight{},
	}
}

func (f *fakeDroneStore) Create(_ context.Context, d *models.Drone) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d.CreatedAt = time.Now()
	f.drones[d.ID] = d
	return nil
}

func (f *fakeDroneStore) GetByID(_ context.Context, id uuid.UUID) (*models.Drone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.drones[id], nil
}

func (f *fakeDroneStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*models.Drone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Drone
	for _, d := range f.drones {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDroneStore) Update(_ context.Context, d *models.Drone) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drones[d.ID] = d
	return nil
}

func (f *fakeDroneStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.drones, id)
	return nil
}

func (f *fakeDroneStore) CreateFlight(_ context.Context, fl *models.DroneFlight) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	fl.CreatedAt = time.Now()
	f.flights[fl.DroneID] = append(f.flights[fl.DroneID], fl)
	return nil
}

func (f *fakeDroneStore) ListFlights(_ context.Context, droneID uuid.UUID) ([]*models.DroneFlight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flights[droneID], nil
}
