package controllers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/kaudaouda/Anac-backend/internal/dtos"
	"github.com/kaudaouda/Anac-backend/internal/middleware"
	"github.com/kaudaouda/Anac-backend/internal/services"
	"github.com/kaudaouda/Anac-backend/internal/utils"
)

// DroneController serves the registered-drone CRUD and the per-drone
// flight log. Every route sits behind the strict auth middleware.
type DroneController struct {
	drones   *services.DroneService
	validate *validator.Validate
}

func NewDroneController(drones *services.DroneService) *DroneController {
	return &DroneController{drones: drones, validate: validator.New()}
}

func (c *DroneController) respondDroneErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrDroneNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound,
			utils.ErrCodeNotFound, "drone not found", nil)
	case errors.Is(err, services.ErrNotDroneOwner):
		utils.RespondErrorWithCode(w, http.StatusForbidden,
			utils.ErrCodeForbidden, "drone belongs to another user", nil)
	default:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "drone operation failed", nil, err)
	}
}

// List handles GET /drones.
func (c *DroneController) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	drones, err := c.drones.ListForUser(r.Context(), user.ID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to list drones", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DroneListResponse{Drones: drones, Count: len(drones)})
}

// Create handles POST /drones.
func (c *DroneController) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req dtos.DroneRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	drone := req.ToModel()
	if err := c.drones.Register(r.Context(), user, drone); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to register drone", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, drone)
}

// Get handles GET /drones/{id}.
func (c *DroneController) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	drone, err := c.drones.Get(r.Context(), id, user)
	if err != nil {
		c.respondDroneErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, drone)
}

// Update handles PUT /drones/{id}.
func (c *DroneController) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.DroneRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	drone, err := c.drones.Update(r.Context(), id, user, req.ToModel())
	if err != nil {
		c.respondDroneErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, drone)
}

// Delete handles DELETE /drones/{id}.
func (c *DroneController) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.drones.Delete(r.Context(), id, user); err != nil {
		c.respondDroneErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "drone deleted"})
}

// ListFlights handles GET /drones/{id}/flights.
func (c *DroneController) ListFlights(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	flights, err := c.drones.Flights(r.Context(), id, user)
	if err != nil {
		c.respondDroneErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.FlightListResponse{Flights: flights, Count: len(flights)})
}

// LogFlight handles POST /drones/{id}/flights.
func (c *DroneController) LogFlight(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.FlightRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	flight := req.ToModel()
	if err := c.drones.LogFlight(r.Context(), id, user, flight); err != nil {
		c.respondDroneErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, flight)
}
