package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"

	"github.com/kaudaouda/Anac-backend/internal/utils"
)

// ExpiringStore is any table with rows that age out and can be purged.
type ExpiringStore interface {
	CleanupExpired(ctx context.Context, now time.Time) (int64, error)
}

// CleanupService purges expired blacklist rows and stale password-reset
// tokens. It is driven by the cron scheduler in main.
type CleanupService struct {
	blacklist ExpiringStore
	resets    ExpiringStore
}

func NewCleanupService(blacklist, resets ExpiringStore) *CleanupService {
	return &CleanupService{blacklist: blacklist, resets: resets}
}

// Run executes one cleanup sweep. Each table is purged independently so
// a failure on one does not skip the other.
func (s *CleanupService) Run(ctx context.Context) {
	now := time.Now()

	if n, err := runWithRetry(ctx, s.blacklist, now); err != nil {
		utils.Logger.WithError(err).Error("blacklist cleanup failed")
	} else if n > 0 {
		utils.Logger.WithField("rows", n).Info("purged expired blacklisted tokens")
	}

	if n, err := runWithRetry(ctx, s.resets, now); err != nil {
		utils.Logger.WithError(err).Error("password reset token cleanup failed")
	} else if n > 0 {
		utils.Logger.WithField("rows", n).Info("purged stale password reset tokens")
	}
}

// runWithRetry retries once, after a short pause, when the driver marks
// the failure as safe to retry (connection died before the statement ran).
func runWithRetry(ctx context.Context, store ExpiringStore, now time.Time) (int64, error) {
	n, err := store.CleanupExpired(ctx, now)
	if err == nil {
		return n, nil
	}

	var pgErr *pgconn.PgError
	if pgconn.SafeToRetry(err) || errors.As(err, &pgErr) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(3 * time.Second):
		}
		return store.CleanupExpired(ctx, now)
	}
	return 0, err
}
