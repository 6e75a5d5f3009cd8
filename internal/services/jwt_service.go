package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kaudaouda/Anac-backend/internal/models"
	"github.com/kaudaouda/Anac-backend/internal/utils"
)

// ErrInvalidToken is the only error surfaced for any token the service
// refuses: bad signature, wrong algorithm, expired, malformed, wrong
// token_type, or blacklisted. Callers must not leak which case it was.
var ErrInvalidToken = errors.New("invalid or expired token")

// AuthClaims is the payload carried by both access and refresh tokens.
type AuthClaims struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
	TokenType   string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair bundles the access and refresh tokens issued at login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// BlacklistStore is the persistence the service needs for revocation.
type BlacklistStore interface {
	Blacklist(ctx context.Context, t *models.BlacklistedToken) error
	IsBlacklisted(ctx context.Context, tokenID string) (bool, error)
}

// JWTService signs and validates the HS256 tokens that back every
// authenticated request.
type JWTService struct {
	secretKey  []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	blacklist  BlacklistStore
}

func NewJWTService(secretKey, issuer string, accessTTL, refreshTTL time.Duration, blacklist BlacklistStore) *JWTService {
	return &JWTService{
		secretKey:  []byte(secretKey),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		blacklist:  blacklist,
	}
}

func (s *JWTService) AccessTTL() time.Duration  { return s.accessTTL }
func (s *JWTService) RefreshTTL() time.Duration { return s.refreshTTL }

func (s *JWTService) generate(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		UserID:      user.ID.String(),
		Email:       user.Email,
		Username:    user.Username,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
		TokenType:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (s *JWTService) GenerateAccessToken(user *models.User) (string, error) {
	return s.generate(user, models.TokenTypeAccess, s.accessTTL)
}

func (s *JWTService) GenerateRefreshToken(user *models.User) (string, error) {
	return s.generate(user, models.TokenTypeRefresh, s.refreshTTL)
}

// GeneratePair issues a fresh access/refresh pair for the user.
func (s *JWTService) GeneratePair(user *models.User) (*TokenPair, error) {
	access, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// parse verifies the signature and registered claims without consulting
// the blacklist. Expiry is checked with zero leeway.
func (s *JWTService) parse(raw string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" || claims.TokenType == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateToken fully validates a token of the expected type, including
// the revocation check. A blacklist storage error is treated the same as
// a revoked token: the request must not be allowed through on doubt.
func (s *JWTService) ValidateToken(ctx context.Context, raw, wantType string) (*AuthClaims, error) {
	claims, err := s.parse(raw)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("blacklist lookup failed, rejecting token")
		return nil, ErrInvalidToken
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RefreshAccessToken exchanges a valid refresh token for a new access
// token. Identity claims are copied from the refresh token rather than
// re-read from the database, so staff/superuser changes only take effect
// once the refresh token itself expires.
func (s *JWTService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.ValidateToken(ctx, refreshToken, models.TokenTypeRefresh)
	if err != nil {
		return "", err
	}

	now := time.Now()
	newClaims := AuthClaims{
		UserID:      claims.UserID,
		Email:       claims.Email,
		Username:    claims.Username,
		IsStaff:     claims.IsStaff,
		IsSuperuser: claims.IsSuperuser,
		TokenType:   models.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("signing refreshed access token: %w", err)
	}
	return signed, nil
}

// BlacklistToken revokes a token by jti. The token only needs to parse;
// an already-blacklisted token is accepted again so logout stays
// idempotent. Expired or malformed tokens are rejected with ErrInvalidToken.
func (s *JWTService) BlacklistToken(ctx context.Context, raw, reason string) error {
	claims, err := s.parse(raw)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return ErrInvalidToken
	}

	entry := &models.BlacklistedToken{
		TokenID:   claims.ID,
		TokenType: claims.TokenType,
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time,
		Reason:    reason,
	}
	if err := s.blacklist.Blacklist(ctx, entry); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	return nil
}
