package controllers

import (
	"net/http"
	"strconv"

	"github.com/kaudaouda/Anac-backend/internal/dtos"
	"github.com/kaudaouda/Anac-backend/internal/services"
	"github.com/kaudaouda/Anac-backend/internal/utils"
)

// GeodataController serves the no-fly-zone reference data and the
// flight-permission check. All routes are public reads.
type GeodataController struct {
	geodata services.GeodataStore
	zones   *services.ZoneService
}

func NewGeodataController(geodata services.GeodataStore, zones *services.ZoneService) *GeodataController {
	return &GeodataController{geodata: geodata, zones: zones}
}

// ListAirports handles GET /geodata/airports.
func (c *GeodataController) ListAirports(w http.ResponseWriter, r *http.Request) {
	airports, err := c.geodata.ListActiveAirports(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to list airports", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.AirportListResponse{Airports: airports, Count: len(airports)})
}

// ListProtectedAreas handles GET /geodata/protected-areas. The optional
// ?kind= query narrows to natural_reserve or national_park.
func (c *GeodataController) ListProtectedAreas(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind != "" && kind != "natural_reserve" && kind != "national_park" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeInvalidPayload, "unknown protected area kind", nil)
		return
	}

	areas, err := c.geodata.ListActiveProtectedAreas(r.Context(), kind)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to list protected areas", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ProtectedAreaListResponse{Areas: areas, Count: len(areas)})
}

// CheckZone handles GET /zones/check?lat=..&lng=..; it reports every
// restriction covering the coordinate.
func (c *GeodataController) CheckZone(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeInvalidPayload, "lat and lng query parameters are required", nil)
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeInvalidPayload, "coordinates out of range", nil)
		return
	}

	result, err := c.zones.CheckPoint(r.Context(), lat, lng)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "zone check failed", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
