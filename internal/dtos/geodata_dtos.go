package dtos

import "github.com/kaudaouda/Anac-backend/internal/models"

type AirportListResponse struct {
	Airports []*models.Airport `json:"airports"`
	Count    int               `json:"count"`
}

type ProtectedAreaListResponse struct {
	Areas []*models.ProtectedArea `json:"areas"`
	Count int                     `json:"count"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
