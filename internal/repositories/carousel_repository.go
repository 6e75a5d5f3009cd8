package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

type CarouselRepository struct {
	db DB
}

func NewCarouselRepository(db DB) *CarouselRepository {
	return &CarouselRepository{db: db}
}

const carouselColumns = `id, title, description, image_url, display_order, is_active, created_at, updated_at`

func scanCarouselImage(row pgx.Row) (*models.CarouselImage, error) {
	var img models.CarouselImage
	err := row.Scan(&img.ID, &img.Title, &img.Description, &img.ImageURL,
		&img.DisplayOrder, &img.IsActive, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning carousel image: %w", err)
	}
	return &img, nil
}

// ListActive returns the public carousel, ordered for display.
func (r *CarouselRepository) ListActive(ctx context.Context) ([]*models.CarouselImage, error) {
	query := fmt.Sprintf(`SELECT %s FROM carousel_images WHERE is_active = TRUE ORDER BY display_order ASC`, carouselColumns)
	return r.list(ctx, query)
}

// ListAll includes inactive images, for the admin surface.
func (r *CarouselRepository) ListAll(ctx context.Context) ([]*models.CarouselImage, error) {
	query := fmt.Sprintf(`SELECT %s FROM carousel_images ORDER BY display_order ASC`, carouselColumns)
	return r.list(ctx, query)
}

func (r *CarouselRepository) list(ctx context.Context, query string) ([]*models.CarouselImage, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing carousel images: %w", err)
	}
	defer rows.Close()

	var images []*models.CarouselImage
	for rows.Next() {
		img, err := scanCarouselImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *CarouselRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CarouselImage, error) {
	query := fmt.Sprintf(`SELECT %s FROM carousel_images WHERE id = $1`, carouselColumns)
	return scanCarouselImage(r.db.QueryRow(ctx, query, id))
}

func (r *CarouselRepository) Create(ctx context.Context, img *models.CarouselImage) error {
	if img.ID == uuid.Nil {
		img.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO carousel_images (id, title, description, image_url, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`,
		img.ID, img.Title, img.Description, img.ImageURL, img.DisplayOrder, img.IsActive)
	if err != nil {
		return fmt.Errorf("inserting carousel image: %w", err)
	}
	return nil
}

func (r *CarouselRepository) Update(ctx context.Context, img *models.CarouselImage) error {
	_, err := r.db.Exec(ctx, `
		UPDATE carousel_images
		SET title = $2, description = $3, image_url = $4, display_order = $5,
			is_active = $6, updated_at = NOW()
		WHERE id = $1`,
		img.ID, img.Title, img.Description, img.ImageURL, img.DisplayOrder, img.IsActive)
	if err != nil {
		return fmt.Errorf("updating carousel image: %w", err)
	}
	return nil
}

func (r *CarouselRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM carousel_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting carousel image: %w", err)
	}
	return nil
}
