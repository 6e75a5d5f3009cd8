package dtos

import "github.com/kaudaouda/Anac-backend/internal/models"

type CarouselImageRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description" validate:"omitempty,max=1000"`
	ImageURL     string `json:"image_url" validate:"required,url"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
	IsActive     bool   `json:"is_active"`
}

func (r *CarouselImageRequest) ToModel() *models.CarouselImage {
	return &models.CarouselImage{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
	}
}

type CarouselListResponse struct {
	Images []*models.CarouselImage `json:"images"`
	Count  int                     `json:"count"`
}
