package services

import (
	"context"
	"fmt"

	"github.com/umahmood/haversine"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

// GeodataStore is the reference-data persistence ZoneService reads from.
type GeodataStore interface {
	ListActiveAirports(ctx context.Context) ([]*models.Airport, error)
	ListActiveProtectedAreas(ctx context.Context, kind string) ([]*models.ProtectedArea, error)
}

// ZoneRestriction describes one zone a coordinate falls inside.
type ZoneRestriction struct {
	ZoneType   string  `json:"zone_type"` // airport | natural_reserve | national_park
	Name       string  `json:"name"`
	Identifier string  `json:"identifier"`
	DistanceKm float64 `json:"distance_km,omitempty"` // airport zones only
}

// ZoneCheckResult is the answer to "may a drone fly here".
type ZoneCheckResult struct {
	Latitude      float64           `json:"latitude"`
	Longitude     float64           `json:"longitude"`
	FlightAllowed bool              `json:"flight_allowed"`
	Restrictions  []ZoneRestriction `json:"restrictions"`
}

// ZoneService answers no-fly-zone queries against the airport and
// protected-area reference tables.
type ZoneService struct {
	geodata GeodataStore
}

func NewZoneService(geodata GeodataStore) *ZoneService {
	return &ZoneService{geodata: geodata}
}

// CheckPoint reports every restriction covering the coordinate. Airport
// zones are circles (great-circle distance against the airport radius);
// protected areas are polygons.
func (s *ZoneService) CheckPoint(ctx context.Context, lat, lng float64) (*ZoneCheckResult, error) {
	result := &ZoneCheckResult{
		Latitude:     lat,
		Longitude:    lng,
		Restrictions: []ZoneRestriction{},
	}
	point := haversine.Coord{Lat: lat, Lon: lng}

	airports, err := s.geodata.ListActiveAirports(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading airports: %w", err)
	}
	for _, a := range airports {
		_, km := haversine.Distance(point, haversine.Coord{Lat: a.Latitude, Lon: a.Longitude})
		if km <= a.RadiusKm {
			result.Restrictions = append(result.Restrictions, ZoneRestriction{
				ZoneType:   "airport",
				Name:       a.Name,
				Identifier: a.AirportID,
				DistanceKm: km,
			})
		}
	}

	areas, err := s.geodata.ListActiveProtectedAreas(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("loading protected areas: %w", err)
	}
	for _, area := range areas {
		if pointInPolygon(lat, lng, area.Coordinates) {
			result.Restrictions = append(result.Restrictions, ZoneRestriction{
				ZoneType:   area.Kind,
				Name:       area.Name,
				Identifier: area.AreaID,
			})
		}
	}

	result.FlightAllowed = len(result.Restrictions) == 0
	return result, nil
}

// pointInPolygon runs the even-odd ray-casting test. Vertices are
// [lat, lng] pairs; the polygon is treated as closed.
func pointInPolygon(lat, lng float64, polygon [][2]float64) bool {
	if len(polygon) < 3 {
		return false
	}
	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		yi, xi := polygon[i][0], polygon[i][1]
		yj, xj := polygon[j][0], polygon[j][1]
		if (yi > lat) != (yj > lat) &&
			lng < (xj-xi)*(lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}
