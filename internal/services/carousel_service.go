package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

var ErrCarouselImageNotFound = errors.New("carousel image not found")

// CarouselStore is the banner persistence.
type CarouselStore interface {
	ListActive(ctx context.Context) ([]*models.CarouselImage, error)
	ListAll(ctx context.Context) ([]*models.CarouselImage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CarouselImage, error)
	Create(ctx context.Context, img *models.CarouselImage) error
	Update(ctx context.Context, img *models.CarouselImage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CarouselService manages the landing-page banners. Reads are public;
// writes are restricted to staff at the routing layer.
type CarouselService struct {
	images CarouselStore
}

func NewCarouselService(images CarouselStore) *CarouselService {
	return &CarouselService{images: images}
}

func (s *CarouselService) PublicImages(ctx context.Context) ([]*models.CarouselImage, error) {
	return s.images.ListActive(ctx)
}

func (s *CarouselService) AllImages(ctx context.Context) ([]*models.CarouselImage, error) {
	return s.images.ListAll(ctx)
}

func (s *CarouselService) Create(ctx context.Context, img *models.CarouselImage) error {
	img.ID = uuid.New()
	return s.images.Create(ctx, img)
}

func (s *CarouselService) Update(ctx context.Context, id uuid.UUID, update *models.CarouselImage) (*models.CarouselImage, error) {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, ErrCarouselImageNotFound
	}

	img.Title = update.Title
	img.Description = update.Description
	img.ImageURL = update.ImageURL
	img.DisplayOrder = update.DisplayOrder
	img.IsActive = update.IsActive

	if err := s.images.Update(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *CarouselService) Delete(ctx context.Context, id uuid.UUID) error {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if img == nil {
		return ErrCarouselImageNotFound
	}
	return s.images.Delete(ctx, id)
}
