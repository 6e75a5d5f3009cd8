package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

func TestCleanupPurgesOnlyExpiredRows(t *testing.T) {
	bl := newMemBlacklist()
	resets := newMemResetStore()

	require.NoError(t, bl.Blacklist(context.Background(), &models.BlacklistedToken{
		TokenID:   "expired",
		ExpiresAt: time.Now().Add(-time.Hour),
	}))
	require.NoError(t, bl.Blacklist(context.Background(), &models.BlacklistedToken{
		TokenID:   "live",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, resets.Create(context.Background(), &models.PasswordResetToken{
		ID:        uuid.New(),
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))
	require.NoError(t, resets.Create(context.Background(), &models.PasswordResetToken{
		ID:        uuid.New(),
		Token:     "fresh",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	NewCleanupService(bl, resets).Run(context.Background())

	live, err := bl.IsBlacklisted(context.Background(), "live")
	require.NoError(t, err)
	assert.True(t, live)
	assert.Len(t, bl.entries, 1)
	assert.Len(t, resets.tokens, 1)
}
