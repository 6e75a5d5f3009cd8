package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

// memBlacklist is an in-memory BlacklistStore for tests.
type memBlacklist struct {
	mu      sync.Mutex
	entries map[string]*models.BlacklistedToken
	failure error
}

func newMemBlacklist() *memBlacklist {
	return &memBlacklist{entries: map[string]*models.BlacklistedToken{}}
}

func (m *memBlacklist) Blacklist(_ context.Context, t *models.BlacklistedToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failure != nil {
		return m.failure
	}
	if _, ok := m.entries[t.TokenID]; !ok {
		m.entries[t.TokenID] = t
	}
	return nil
}

func (m *memBlacklist) IsBlacklisted(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failure != nil {
		return false, m.failure
	}
	entry, ok := m.entries[tokenID]
	return ok && entry.ExpiresAt.After(time.Now()), nil
}

func (m *memBlacklist) CleanupExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, entry := range m.entries {
		if !entry.ExpiresAt.After(now) {
			delete(m.entries, id)
			n++
		}
	}
	return n, nil
}

func testUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Email:    "pilot@example.com",
		Username: "pilot",
		IsActive: true,
		IsStaff:  true,
	}
}

func newTestJWTService(bl *memBlacklist) *JWTService {
	return NewJWTService("test-secret-key", "anac-backend", 30*time.Minute, 24*time.Hour, bl)
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestJWTService(newMemBlacklist())
	user := testUser()

	raw, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), raw, models.TokenTypeAccess)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Username, claims.Username)
	assert.True(t, claims.IsStaff)
	assert.False(t, claims.IsSuperuser)
	assert.Equal(t, models.TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestValidateTokenRejectsWrongType(t *testing.T) {
	svc := newTestJWTService(newMemBlacklist())
	user := testUser()

	refresh, err := svc.GenerateRefreshToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), refresh, models.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	svc := newTestJWTService(newMemBlacklist())
	other := NewJWTService("another-secret", "anac-backend", time.Minute, time.Hour, newMemBlacklist())

	raw, err := other.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), raw, models.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	bl := newMemBlacklist()
	svc := NewJWTService("test-secret-key", "anac-backend", -time.Second, time.Hour, bl)

	raw, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), raw, models.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsNoneAlgorithm(t *testing.T) {
	svc := newTestJWTService(newMemBlacklist())

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, AuthClaims{
		UserID:    uuid.NewString(),
		TokenType: models.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), raw, models.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestJWTService(newMemBlacklist())
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.ValidateToken(context.Background(), raw, models.TokenTypeAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestBlacklistedTokenIsRejected(t *testing.T) {
	bl := newMemBlacklist()
	svc := newTestJWTService(bl)
	user := testUser()

	raw, err := svc.GenerateRefreshToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), raw, models.TokenTypeRefresh)
	require.NoError(t, err)

	require.NoError(t, svc.BlacklistToken(context.Background(), raw, "logout"))

	_, err = svc.ValidateToken(context.Background(), raw, models.TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBlacklistTokenIsIdempotent(t *testing.T) {
	bl := newMemBlacklist()
	svc := newTestJWTService(bl)

	raw, err := svc.GenerateRefreshToken(testUser())
	require.NoError(t, err)

	require.NoError(t, svc.BlacklistToken(context.Background(), raw, "logout"))
	require.NoError(t, svc.BlacklistToken(context.Background(), raw, "logout"))
	assert.Len(t, bl.entries, 1)
}

func TestBlacklistStorageFailureRejectsToken(t *testing.T) {
	bl := newMemBlacklist()
	svc := newTestJWTService(bl)

	raw, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	bl.failure = errors.New("connection refused")
	_, err = svc.ValidateToken(context.Background(), raw, models.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshAccessTokenCopiesIdentityClaims(t *testing.T) {
	svc := newTestJWTService(newMemBlacklist())
	user := testUser()
	user.IsSuperuser = true

	refresh, err := svc.GenerateRefreshToken(user)
	require.NoError(t, err)
	refreshClaims, err := svc.ValidateToken(context.Background(), refresh, models.TokenTypeRefresh)
	require.NoError(t, err)

	access, err := svc.RefreshAccessToken(context.Background(), refresh)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), access, models.TokenTypeAccess)
	require.NoError(t, err)

	assert.Equal(t, refreshClaims.UserID, claims.UserID)
	assert.Equal(t, refreshClaims.Email, claims.Email)
	assert.Equal(t, refreshClaims.Username, claims.Username)
	assert.Equal(t, refreshClaims.IsStaff, claims.IsStaff)
	assert.Equal(t, refreshClaims.IsSuperuser, claims.IsSuperuser)
	assert.Equal(t, models.TokenTypeAccess, claims.TokenType)
	assert.NotEqual(t, refreshClaims.ID, claims.ID)
}

func TestRefreshWithAccessTokenFails(t *testing.T) {
	svc := newTestJWTService(newMemBlacklist())

	access, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = svc.RefreshAccessToken(context.Background(), access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshWithBlacklistedTokenFails(t *testing.T) {
	svc := newTestJWTService(newMemBlacklist())

	refresh, err := svc.GenerateRefreshToken(testUser())
	require.NoError(t, err)
	require.NoError(t, svc.BlacklistToken(context.Background(), refresh, "logout"))

	_, err = svc.RefreshAccessToken(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEachTokenGetsFreshJTI(t *testing.T) {
	svc := newTestJWTService(newMemBlacklist())
	user := testUser()

	first, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	second, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	c1, err := svc.ValidateToken(context.Background(), first, models.TokenTypeAccess)
	require.NoError(t, err)
	c2, err := svc.ValidateToken(context.Background(), second, models.TokenTypeAccess)
	require.NoError(t, err)

	assert.NotEqual(t, c1.ID, c2.ID)
}
