package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

type memGeodataStore struct {
	airports []*models.Airport
	areas    []*models.ProtectedArea
}

func (m *memGeodataStore) ListActiveAirports(context.Context) ([]*models.Airport, error) {
	return m.airports, nil
}

func (m *memGeodataStore) ListActiveProtectedAreas(_ context.Context, kind string) ([]*models.ProtectedArea, error) {
	if kind == "" {
		return m.areas, nil
	}
	var out []*models.ProtectedArea
	for _, a := range m.areas {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out, nil
}

func abidjanAirportStore() *memGeodataStore {
	return &memGeodataStore{
		airports: []*models.Airport{{
			AirportID: "abj",
			Name:      "Aéroport Félix Houphouët-Boigny",
			Latitude:  5.2614,
			Longitude: -3.9258,
			RadiusKm:  8.0,
		}},
		areas: []*models.ProtectedArea{{
			AreaID: "parc-tai",
			Name:   "Parc National de Taï",
			Kind:   models.AreaKindNationalPark,
			Coordinates: [][2]float64{
				{5.2, -7.7}, {5.6, -7.6}, {5.9, -7.4}, {6.0, -7.2},
				{5.9, -7.0}, {5.6, -7.1}, {5.3, -7.2}, {5.2, -7.4},
				{5.1, -7.6}, {5.2, -7.7},
			},
		}},
	}
}

func TestCheckPointInsideAirportRadius(t *testing.T) {
	svc := NewZoneService(abidjanAirportStore())

	// right on top of the airport
	result, err := svc.CheckPoint(context.Background(), 5.2614, -3.9258)
	require.NoError(t, err)

	assert.False(t, result.FlightAllowed)
	require.Len(t, result.Restrictions, 1)
	assert.Equal(t, "airport", result.Restrictions[0].ZoneType)
	assert.Equal(t, "abj", result.Restrictions[0].Identifier)
	assert.InDelta(t, 0, result.Restrictions[0].DistanceKm, 0.01)
}

func TestCheckPointOutsideAllZones(t *testing.T) {
	svc := NewZoneService(abidjanAirportStore())

	// Yamoussoukro city centre, far from both zones
	result, err := svc.CheckPoint(context.Background(), 6.82, -5.28)
	require.NoError(t, err)

	assert.True(t, result.FlightAllowed)
	assert.Empty(t, result.Restrictions)
}

func TestCheckPointInsideProtectedArea(t *testing.T) {
	svc := NewZoneService(abidjanAirportStore())

	// middle of the Taï park polygon
	result, err := svc.CheckPoint(context.Background(), 5.55, -7.35)
	require.NoError(t, err)

	assert.False(t, result.FlightAllowed)
	require.Len(t, result.Restrictions, 1)
	assert.Equal(t, models.AreaKindNationalPark, result.Restrictions[0].ZoneType)
	assert.Equal(t, "parc-tai", result.Restrictions[0].Identifier)
}

func TestPointInPolygon(t *testing.T) {
	square := [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}}

	assert.True(t, pointInPolygon(5, 5, square))
	assert.False(t, pointInPolygon(15, 5, square))
	assert.False(t, pointInPolygon(-1, -1, square))

	// degenerate polygons never match
	assert.False(t, pointInPolygon(5, 5, [][2]float64{{0, 0}, {10, 10}}))
	assert.False(t, pointInPolygon(5, 5, nil))
}

func TestCheckPointJustBeyondRadius(t *testing.T) {
	svc := NewZoneService(&memGeodataStore{
		airports: []*models.Airport{{
			AirportID: "kgo",
			Name:      "Aéroport de Korhogo",
			Latitude:  9.4167,
			Longitude: -5.6167,
			RadiusKm:  5.0,
		}},
	})

	// one degree of latitude is ~111 km, well beyond the 5 km radius
	result, err := svc.CheckPoint(context.Background(), 10.4167, -5.6167)
	require.NoError(t, err)
	assert.True(t, result.FlightAllowed)
}
