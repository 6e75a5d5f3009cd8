package controllers

import (
	"net/http"

	"github.com/kaudaouda/Anac-backend/internal/dtos"
	"github.com/kaudaouda/Anac-backend/internal/utils"
)

type HealthController struct {
	serviceName string
}

func NewHealthController(serviceName string) *HealthController {
	return &HealthController{serviceName: serviceName}
}

// Health handles GET /health for load-balancer probes.
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthResponse{
		Status:  "ok",
		Service: c.serviceName,
	})
}
