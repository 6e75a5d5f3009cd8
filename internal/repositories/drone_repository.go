package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

type DroneRepository struct {
	db DB
}

func NewDroneRepository(db DB) *DroneRepository {
	return &DroneRepository{db: db}
}

const droneColumns = `id, user_id, name, model, brand, drone_type, serial_number, weight_kg,
	max_altitude_m, max_flight_time_min, status, registration_number, purchase_date,
	created_at, updated_at`

func scanDrone(row pgx.Row) (*models.Drone, error) {
	var d models.Drone
	err := row.Scan(
		&d.ID, &d.UserID, &d.Name, &d.Model, &d.Brand, &d.DroneType, &d.SerialNumber,
		&d.WeightKg, &d.MaxAltitudeM, &d.MaxFlightTimeMin, &d.Status,
		&d.RegistrationNumber, &d.PurchaseDate, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning drone: %w", err)
	}
	return &d, nil
}

func (r *DroneRepository) Create(ctx context.Context, d *models.Drone) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO drones (id, user_id, name, model, brand, drone_type, serial_number,
			weight_kg, max_altitude_m, max_flight_time_min, status, registration_number,
			purchase_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())`,
		d.ID, d.UserID, d.Name, d.Model, d.Brand, d.DroneType, d.SerialNumber,
		d.WeightKg, d.MaxAltitudeM, d.MaxFlightTimeMin, d.Status,
		d.RegistrationNumber, d.PurchaseDate)
	if err != nil {
		return fmt.Errorf("inserting drone: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) when no drone exists with that id.
func (r *DroneRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Drone, error) {
	query := fmt.Sprintf(`SELECT %s FROM drones WHERE id = $1`, droneColumns)
	return scanDrone(r.db.QueryRow(ctx, query, id))
}

// ListByUser returns the user's drones, newest first.
func (r *DroneRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Drone, error) {
	query := fmt.Sprintf(`SELECT %s FROM drones WHERE user_id = $1 ORDER BY created_at DESC`, droneColumns)
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing drones: %w", err)
	}
	defer rows.Close()

	var drones []*models.Drone
	for rows.Next() {
		d, err := scanDrone(rows)
		if err != nil {
			return nil, err
		}
		drones = append(drones, d)
	}
	return drones, rows.Err()
}

func (r *DroneRepository) Update(ctx context.Context, d *models.Drone) error {
	_, err := r.db.Exec(ctx, `
		UPDATE drones
		SET name = $2, model = $3, brand = $4, drone_type = $5, serial_number = $6,
			weight_kg = $7, max_altitude_m = $8, max_flight_time_min = $9, status = $10,
			registration_number = $11, purchase_date = $12, updated_at = NOW()
		WHERE id = $1`,
		d.ID, d.Name, d.Model, d.Brand, d.DroneType, d.SerialNumber,
		d.WeightKg, d.MaxAltitudeM, d.MaxFlightTimeMin, d.Status,
		d.RegistrationNumber, d.PurchaseDate)
	if err != nil {
		return fmt.Errorf("updating drone: %w", err)
	}
	return nil
}

func (r *DroneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM drones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting drone: %w", err)
	}
	return nil
}

// ------------------------------------------------------------------
// Flight log
// ------------------------------------------------------------------

func (r *DroneRepository) CreateFlight(ctx context.Context, f *models.DroneFlight) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO drone_flights (id, drone_id, pilot_id, flight_date, duration_minutes,
			location, purpose, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`,
		f.ID, f.DroneID, f.PilotID, f.FlightDate, f.DurationMinutes,
		f.Location, f.Purpose, f.Notes)
	if err != nil {
		return fmt.Errorf("inserting drone flight: %w", err)
	}
	return nil
}

// ListFlights returns the flight log for a drone, most recent flight first.
func (r *DroneRepository) ListFlights(ctx context.Context, droneID uuid.UUID) ([]*models.DroneFlight, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, drone_id, pilot_id, flight_date, duration_minutes, location, purpose, notes, created_at
		FROM drone_flights WHERE drone_id = $1 ORDER BY flight_date DESC`, droneID)
	if err != nil {
		return nil, fmt.Errorf("listing drone flights: %w", err)
	}
	defer rows.Close()

	var flights []*models.DroneFlight
	for rows.Next() {
		var f models.DroneFlight
		if err := rows.Scan(&f.ID, &f.DroneID, &f.PilotID, &f.FlightDate, &f.DurationMinutes,
			&f.Location, &f.Purpose, &f.Notes, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning drone flight: %w", err)
		}
		flights = append(flights, &f)
	}
	return flights, rows.Err()
}
