package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

type PasswordResetRepository struct {
	db DB
}

func NewPasswordResetRepository(db DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, t *models.PasswordResetToken) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_reset_tokens (id, user_id, token, created_at, expires_at, is_used)
		VALUES ($1, $2, $3, NOW(), $4, FALSE)`,
		t.ID, t.UserID, t.Token, t.ExpiresAt)
	if err != nil {
		return fmt.Errorf("inserting password reset token: %w", err)
	}
	return nil
}

// GetByToken returns (nil, nil) when the token is unknown.
func (r *PasswordResetRepository) GetByToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	var t models.PasswordResetToken
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, token, created_at, expires_at, is_used
		FROM password_reset_tokens WHERE token = $1`, token,
	).Scan(&t.ID, &t.UserID, &t.Token, &t.CreatedAt, &t.ExpiresAt, &t.IsUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning password reset token: %w", err)
	}
	return &t, nil
}

func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE password_reset_tokens SET is_used = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("marking password reset token used: %w", err)
	}
	return nil
}

// InvalidateForUser marks every outstanding token for the user as used, so
// only the most recently requested link works.
func (r *PasswordResetRepository) InvalidateForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE password_reset_tokens SET is_used = TRUE WHERE user_id = $1 AND is_used = FALSE`,
		userID)
	if err != nil {
		return fmt.Errorf("invalidating password reset tokens: %w", err)
	}
	return nil
}

func (r *PasswordResetRepository) CleanupExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM password_reset_tokens WHERE expires_at <= $1 OR is_used = TRUE`, now)
	if err != nil {
		return 0, fmt.Errorf("cleaning up password reset tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
