package controllers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/kaudaouda/Anac-backend/internal/dtos"
	"github.com/kaudaouda/Anac-backend/internal/services"
	"github.com/kaudaouda/Anac-backend/internal/utils"
)

// CarouselController serves the landing-page banners. The public list is
// unauthenticated; the write routes are mounted behind the staff gate.
type CarouselController struct {
	carousel *services.CarouselService
	validate *validator.Validate
}

func NewCarouselController(carousel *services.CarouselService) *CarouselController {
	return &CarouselController{carousel: carousel, validate: validator.New()}
}

// ListPublic handles GET /carousel.
func (c *CarouselController) ListPublic(w http.ResponseWriter, r *http.Request) {
	images, err := c.carousel.PublicImages(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to list carousel images", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.CarouselListResponse{Images: images, Count: len(images)})
}

// ListAll handles GET /admin/carousel.
func (c *CarouselController) ListAll(w http.ResponseWriter, r *http.Request) {
	images, err := c.carousel.AllImages(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to list carousel images", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.CarouselListResponse{Images: images, Count: len(images)})
}

// Create handles POST /admin/carousel.
func (c *CarouselController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CarouselImageRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	img := req.ToModel()
	if err := c.carousel.Create(r.Context(), img); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to create carousel image", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, img)
}

// Update handles PUT /admin/carousel/{id}.
func (c *CarouselController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.CarouselImageRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	img, err := c.carousel.Update(r.Context(), id, req.ToModel())
	switch {
	case errors.Is(err, services.ErrCarouselImageNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound,
			utils.ErrCodeNotFound, "carousel image not found", nil)
		return
	case err != nil:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to update carousel image", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, img)
}

// Delete handles DELETE /admin/carousel/{id}.
func (c *CarouselController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	err := c.carousel.Delete(r.Context(), id)
	switch {
	case errors.Is(err, services.ErrCarouselImageNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound,
			utils.ErrCodeNotFound, "carousel image not found", nil)
		return
	case err != nil:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to delete carousel image", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "carousel image deleted"})
}
