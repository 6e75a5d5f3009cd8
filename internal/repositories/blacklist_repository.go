package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

// BlacklistRepository persists revoked JWT IDs. Rows are keyed by the
// token's jti claim; a row whose expires_at has passed is dead weight and
// gets removed by the cleanup job.
type BlacklistRepository struct {
	db DB
}

func NewBlacklistRepository(db DB) *BlacklistRepository {
	return &BlacklistRepository{db: db}
}

// Blacklist records a revoked token. Re-revoking the same jti is a no-op,
// which keeps logout idempotent.
func (r *BlacklistRepository) Blacklist(ctx context.Context, t *models.BlacklistedToken) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO jwt_blacklisted_tokens (id, token_id, token_type, user_id, blacklisted_at, expires_at, reason)
		VALUES ($1, $2, $3, $4, NOW(), $5, $6)
		ON CONFLICT (token_id) DO NOTHING`,
		t.ID, t.TokenID, t.TokenType, t.UserID, t.ExpiresAt, t.Reason)
	if err != nil {
		return fmt.Errorf("blacklisting token: %w", err)
	}
	return nil
}

// IsBlacklisted ignores rows that have already expired: once the token
// itself is past exp, signature validation rejects it anyway.
func (r *BlacklistRepository) IsBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM jwt_blacklisted_tokens
			WHERE token_id = $1 AND expires_at > NOW()
		)`, tokenID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking token blacklist: %w", err)
	}
	return exists, nil
}

// CleanupExpired removes blacklist rows whose tokens can no longer pass
// validation. Returns the number of rows deleted.
func (r *BlacklistRepository) CleanupExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM jwt_blacklisted_tokens WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("cleaning up expired blacklist rows: %w", err)
	}
	return tag.RowsAffected(), nil
}
