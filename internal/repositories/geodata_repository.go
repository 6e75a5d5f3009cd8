package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

// GeodataRepository serves the airport and protected-area reference tables.
// Both are read-mostly: rows come from the seeder and change rarely.
type GeodataRepository struct {
	db DB
}

func NewGeodataRepository(db DB) *GeodataRepository {
	return &GeodataRepository{db: db}
}

func (r *GeodataRepository) ListActiveAirports(ctx context.Context) ([]*models.Airport, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, airport_id, name, code, airport_type, city, latitude, longitude,
			radius_km, description, is_active, created_at, updated_at
		FROM airports WHERE is_active = TRUE ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing airports: %w", err)
	}
	defer rows.Close()

	var airports []*models.Airport
	for rows.Next() {
		var a models.Airport
		if err := rows.Scan(&a.ID, &a.AirportID, &a.Name, &a.Code, &a.AirportType,
			&a.City, &a.Latitude, &a.Longitude, &a.RadiusKm, &a.Description,
			&a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning airport: %w", err)
		}
		airports = append(airports, &a)
	}
	return airports, rows.Err()
}

// ListActiveProtectedAreas optionally filters by kind; pass "" for all kinds.
func (r *GeodataRepository) ListActiveProtectedAreas(ctx context.Context, kind string) ([]*models.ProtectedArea, error) {
	query := `
		SELECT id, area_id, name, kind, area_km2, description, coordinates,
			is_active, created_at, updated_at
		FROM protected_areas WHERE is_active = TRUE`
	args := []interface{}{}
	if kind != "" {
		query += ` AND kind = $1`
		args = append(args, kind)
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing protected areas: %w", err)
	}
	defer rows.Close()

	var areas []*models.ProtectedArea
	for rows.Next() {
		var a models.ProtectedArea
		var coords []byte
		if err := rows.Scan(&a.ID, &a.AreaID, &a.Name, &a.Kind, &a.AreaKm2,
			&a.Description, &coords, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning protected area: %w", err)
		}
		if err := json.Unmarshal(coords, &a.Coordinates); err != nil {
			return nil, fmt.Errorf("decoding protected area coordinates: %w", err)
		}
		areas = append(areas, &a)
	}
	return areas, rows.Err()
}

func (r *GeodataRepository) AirportExists(ctx context.Context, airportID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM airports WHERE airport_id = $1)`, airportID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking airport existence: %w", err)
	}
	return exists, nil
}

func (r *GeodataRepository) InsertAirport(ctx context.Context, a *models.Airport) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO airports (id, airport_id, name, code, airport_type, city, latitude,
			longitude, radius_km, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())`,
		a.ID, a.AirportID, a.Name, a.Code, a.AirportType, a.City, a.Latitude,
		a.Longitude, a.RadiusKm, a.Description, a.IsActive)
	if err != nil {
		return fmt.Errorf("inserting airport: %w", err)
	}
	return nil
}

func (r *GeodataRepository) ProtectedAreaExists(ctx context.Context, areaID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM protected_areas WHERE area_id = $1)`, areaID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking protected area existence: %w", err)
	}
	return exists, nil
}

func (r *GeodataRepository) InsertProtectedArea(ctx context.Context, a *models.ProtectedArea) error {
	coords, err := json.Marshal(a.Coordinates)
	if err != nil {
		return fmt.Errorf("encoding protected area coordinates: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO protected_areas (id, area_id, name, kind, area_km2, description,
			coordinates, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`,
		a.ID, a.AreaID, a.Name, a.Kind, a.AreaKm2, a.Description, coords, a.IsActive)
	if err != nil {
		return fmt.Errorf("inserting protected area: %w", err)
	}
	return nil
}
