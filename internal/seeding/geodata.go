// Package seeding loads the Côte d'Ivoire no-fly-zone reference data.
// Every seed is idempotent: rows already present are left untouched, so
// the seeder can run on every deploy.
package seeding

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kaudaouda/Anac-backend/internal/models"
	"github.com/kaudaouda/Anac-backend/internal/repositories"
	"github.com/kaudaouda/Anac-backend/internal/utils"
)

// Run seeds airports and protected areas. It stops at the first storage
// error; partially-seeded data is fine since reruns fill the gaps.
func Run(ctx context.Context, geodata *repositories.GeodataRepository) error {
	if err := seedAirports(ctx, geodata); err != nil {
		return fmt.Errorf("seeding airports: %w", err)
	}
	if err := seedProtectedAreas(ctx, geodata); err != nil {
		return fmt.Errorf("seeding protected areas: %w", err)
	}
	return nil
}

func seedAirports(ctx context.Context, geodata *repositories.GeodataRepository) error {
	seeded := 0
	for _, a := range airportSeeds {
		exists, err := geodata.AirportExists(ctx, a.AirportID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		a.ID = uuid.New()
		a.IsActive = true
		if err := geodata.InsertAirport(ctx, &a); err != nil {
			return err
		}
		seeded++
	}
	if seeded > 0 {
		utils.Logger.WithField("count", seeded).Info("seeded airports")
	}
	return nil
}

func seedProtectedAreas(ctx context.Context, geodata *repositories.GeodataRepository) error {
	seeded := 0
	for _, area := range protectedAreaSeeds {
		exists, err := geodata.ProtectedAreaExists(ctx, area.AreaID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		area.ID = uuid.New()
		area.IsActive = true
		if err := geodata.InsertProtectedArea(ctx, &area); err != nil {
			return err
		}
		seeded++
	}
	if seeded > 0 {
		utils.Logger.WithField("count", seeded).Info("seeded protected areas")
	}
	return nil
}

func km2(v float64) *float64 { return &v }

var airportSeeds = []models.Airport{
	{AirportID: "abj", Name: "Aéroport Félix Houphouët-Boigny", Code: "ABJ", AirportType: models.AirportTypeInternational,
		City: "Abidjan", Latitude: 5.2614, Longitude: -3.9258, RadiusKm: 8.0,
		Description: "Principal aéroport international de la Côte d'Ivoire"},
	{AirportID: "bqu", Name: "Aéroport de Bouaké", Code: "BQU", AirportType: models.AirportTypeDomestic,
		City: "Bouaké", Latitude: 7.7389, Longitude: -5.0736, RadiusKm: 5.0,
		Description: "Aéroport domestique de Bouaké"},
	{AirportID: "bvg", Name: "Aéroport de Boundiali", Code: "BVG", AirportType: models.AirportTypeDomestic,
		City: "Boundiali", Latitude: 9.5333, Longitude: -6.4667, RadiusKm: 5.0,
		Description: "Aéroport domestique de Boundiali"},
	{AirportID: "djo", Name: "Aéroport de Daloa", Code: "DJO", AirportType: models.AirportTypeDomestic,
		City: "Daloa", Latitude: 6.7928, Longitude: -6.4733, RadiusKm: 5.0,
		Description: "Aéroport domestique de Daloa"},
	{AirportID: "gox", Name: "Aéroport de Gagnoa", Code: "GOX", AirportType: models.AirportTypeDomestic,
		City: "Gagnoa", Latitude: 6.1333, Longitude: -5.9333, RadiusKm: 5.0,
		Description: "Aéroport domestique de Gagnoa"},
	{AirportID: "kgo", Name: "Aéroport de Korhogo", Code: "KGO", AirportType: models.AirportTypeDomestic,
		City: "Korhogo", Latitude: 9.4167, Longitude: -5.6167, RadiusKm: 5.0,
		Description: "Aéroport domestique de Korhogo"},
	{AirportID: "mjc", Name: "Aéroport de Man", Code: "MJC", AirportType: models.AirportTypeDomestic,
		City: "Man", Latitude: 7.2721, Longitude: -7.5874, RadiusKm: 5.0,
		Description: "Aéroport domestique de Man"},
	{AirportID: "ody", Name: "Aéroport d'Odienné", Code: "ODY", AirportType: models.AirportTypeDomestic,
		City: "Odienné", Latitude: 9.5000, Longitude: -7.5667, RadiusKm: 5.0,
		Description: "Aéroport domestique d'Odienné"},
	{AirportID: "sik", Name: "Aéroport de San-Pédro", Code: "SIK", AirportType: models.AirportTypeDomestic,
		City: "San-Pédro", Latitude: 4.7467, Longitude: -6.6608, RadiusKm: 5.0,
		Description: "Aéroport domestique de San-Pédro"},
	{AirportID: "tou", Name: "Aéroport de Touba", Code: "TOU", AirportType: models.AirportTypeDomestic,
		City: "Touba", Latitude: 8.2833, Longitude: -7.6833, RadiusKm: 5.0,
		Description: "Aéroport domestique de Touba"},
	{AirportID: "yab", Name: "Aéroport de Yamoussoukro", Code: "YAB", AirportType: models.AirportTypeDomestic,
		City: "Yamoussoukro", Latitude: 6.9031, Longitude: -5.3656, RadiusKm: 5.0,
		Description: "Aéroport domestique de Yamoussoukro"},
	{AirportID: "adz-1", Name: "Aérodrome d'Adzopé", AirportType: models.AirportTypeAerodrome,
		City: "Adzopé", Latitude: 6.1167, Longitude: -3.8667, RadiusKm: 3.0,
		Description: "Aérodrome civil d'Adzopé"},
	{AirportID: "agn-1", Name: "Aérodrome d'Agboville", AirportType: models.AirportTypeAerodrome,
		City: "Agboville", Latitude: 5.9333, Longitude: -4.2167, RadiusKm: 3.0,
		Description: "Aérodrome civil d'Agboville"},
	{AirportID: "bdi-1", Name: "Aérodrome de Bondoukou", AirportType: models.AirportTypeAerodrome,
		City: "Bondoukou", Latitude: 8.0333, Longitude: -2.8000, RadiusKm: 3.0,
		Description: "Aérodrome civil de Bondoukou"},
	{AirportID: "bng-1", Name: "Aérodrome de Bangolo", AirportType: models.AirportTypeAerodrome,
		City: "Bangolo", Latitude: 7.0167, Longitude: -7.4833, RadiusKm: 3.0,
		Description: "Aérodrome civil de Bangolo"},
	{AirportID: "dab-1", Name: "Aérodrome de Dabou", AirportType: models.AirportTypeAerodrome,
		City: "Dabou", Latitude: 5.3167, Longitude: -4.3833, RadiusKm: 3.0,
		Description: "Aérodrome civil de Dabou"},
	{AirportID: "gbl-1", Name: "Aérodrome de Grand-Bassam", AirportType: models.AirportTypeAerodrome,
		City: "Grand-Bassam", Latitude: 5.2000, Longitude: -3.7333, RadiusKm: 3.0,
		Description: "Aérodrome civil de Grand-Bassam"},
}

var protectedAreaSeeds = []models.ProtectedArea{
	{AreaID: "res-comoe", Name: "Réserve Naturelle de la Comoé", Kind: models.AreaKindNaturalReserve,
		AreaKm2: km2(11500), Description: "Plus grande réserve naturelle d'Afrique de l'Ouest",
		Coordinates: [][2]float64{
			{5.2000, -3.8000}, {5.6000, -3.7500}, {5.9000, -3.6000}, {6.1000, -3.4000},
			{6.0000, -3.2000}, {5.7000, -3.1000}, {5.4000, -3.2000}, {5.2000, -3.4000},
			{5.1000, -3.6000}, {5.2000, -3.8000},
		}},
	{AreaID: "res-tai", Name: "Réserve Naturelle de Taï", Kind: models.AreaKindNaturalReserve,
		AreaKm2: km2(3300), Description: "Réserve de forêt tropicale primaire",
		Coordinates: [][2]float64{
			{5.2000, -7.7000}, {5.5000, -7.6000}, {5.8000, -7.5000}, {5.9000, -7.3000},
			{5.8000, -7.1000}, {5.5000, -7.2000}, {5.2000, -7.3000}, {5.1000, -7.5000},
			{5.2000, -7.7000},
		}},
	{AreaID: "res-azagny", Name: "Réserve Naturelle d'Azagny", Kind: models.AreaKindNaturalReserve,
		AreaKm2: km2(194), Description: "Réserve côtière avec mangroves et lagunes",
		Coordinates: [][2]float64{
			{5.0000, -4.9000}, {5.3000, -4.8000}, {5.4000, -4.6000}, {5.3000, -4.4000},
			{5.1000, -4.3000}, {4.9000, -4.4000}, {4.8000, -4.6000}, {4.9000, -4.8000},
			{5.0000, -4.9000},
		}},
	{AreaID: "res-niokolo", Name: "Réserve Naturelle du Niokolo-Koba", Kind: models.AreaKindNaturalReserve,
		AreaKm2: km2(9130), Description: "Réserve de savane et forêt galerie",
		Coordinates: [][2]float64{
			{8.0000, -7.5000}, {8.3000, -7.4000}, {8.6000, -7.3000}, {8.8000, -7.1000},
			{8.7000, -6.9000}, {8.4000, -6.8000}, {8.1000, -6.9000}, {7.9000, -7.1000},
			{8.0000, -7.5000},
		}},
	{AreaID: "parc-comoe", Name: "Parc National de la Comoé", Kind: models.AreaKindNationalPark,
		AreaKm2: km2(11500), Description: "Parc national classé au patrimoine mondial de l'UNESCO",
		Coordinates: [][2]float64{
			{8.0000, -3.5000}, {8.4000, -3.4000}, {8.7000, -3.2000}, {8.9000, -3.0000},
			{8.8000, -2.8000}, {8.5000, -2.7000}, {8.2000, -2.8000}, {8.0000, -3.0000},
			{7.9000, -3.2000}, {8.0000, -3.5000},
		}},
	{AreaID: "parc-tai", Name: "Parc National de Taï", Kind: models.AreaKindNationalPark,
		AreaKm2: km2(3300), Description: "Parc national de forêt tropicale humide",
		Coordinates: [][2]float64{
			{5.2000, -7.7000}, {5.6000, -7.6000}, {5.9000, -7.4000}, {6.0000, -7.2000},
			{5.9000, -7.0000}, {5.6000, -7.1000}, {5.3000, -7.2000}, {5.2000, -7.4000},
			{5.1000, -7.6000}, {5.2000, -7.7000},
		}},
	{AreaID: "parc-maroua", Name: "Parc National de Marahoué", Kind: models.AreaKindNationalPark,
		AreaKm2: km2(1010), Description: "Parc national de forêt dense humide",
		Coordinates: [][2]float64{
			{6.5000, -6.5000}, {6.8000, -6.4000}, {7.1000, -6.3000}, {7.2000, -6.1000},
			{7.1000, -5.9000}, {6.8000, -6.0000}, {6.5000, -6.1000}, {6.4000, -6.3000},
			{6.5000, -6.5000},
		}},
	{AreaID: "parc-azagny", Name: "Parc National d'Azagny", Kind: models.AreaKindNationalPark,
		AreaKm2: km2(194), Description: "Parc national côtier et maritime",
		Coordinates: [][2]float64{
			{5.0000, -4.9000}, {5.2000, -4.8000}, {5.4000, -4.6000}, {5.3000, -4.4000},
			{5.1000, -4.3000}, {4.9000, -4.4000}, {4.8000, -4.6000}, {4.9000, -4.8000},
			{5.0000, -4.9000},
		}},
}
