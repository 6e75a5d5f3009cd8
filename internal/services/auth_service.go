package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kaudaouda/Anac-backend/internal/models"
	"github.com/kaudaouda/Anac-backend/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is disabled")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
)

const passwordResetTTL = 24 * time.Hour

// UserStore is the account persistence AuthService depends on.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateProfileFields(ctx context.Context, u *models.User) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpsertProfile(ctx context.Context, p *models.UserProfile) error
}

// PasswordResetStore persists single-use reset tokens.
type PasswordResetStore interface {
	Create(ctx context.Context, t *models.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*models.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	InvalidateForUser(ctx context.Context, userID uuid.UUID) error
}

// AuthService implements registration, login and the account-management
// flows on top of JWTService.
type AuthService struct {
	users  UserStore
	resets PasswordResetStore
	jwt    *JWTService
}

func NewAuthService(users UserStore, resets PasswordResetStore, jwtService *JWTService) *AuthService {
	return &AuthService{users: users, resets: resets, jwt: jwtService}
}

type RegisterParams struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Phone     string
	Password  string
}

// Register creates the account and immediately issues a token pair, so a
// successful signup leaves the client logged in.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (*models.User, *TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))

	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("checking email availability: %w", err)
	}
	if taken {
		return nil, nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(p.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hashing password: %w", err)
	}

	username := strings.TrimSpace(p.Username)
	if username == "" {
		username = usernameFromEmail(email)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		FirstName:    strings.TrimSpace(p.FirstName),
		LastName:     strings.TrimSpace(p.LastName),
		Phone:        strings.TrimSpace(p.Phone),
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("creating user: %w", err)
	}

	pair, err := s.jwt.GeneratePair(user)
	if err != nil {
		return nil, nil, err
	}

	utils.Logger.WithField("user_id", user.ID).Info("user registered")
	return user, pair, nil
}

// Login verifies the credentials and issues a token pair. Every failure
// mode (unknown email, wrong password, disabled account) maps to
// ErrInvalidCredentials so responses cannot be used to probe accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("loading user: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.jwt.GeneratePair(user)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// Login still succeeds; last_login is informational.
		utils.Logger.WithError(err).Warn("failed to update last login")
	}
	user.LastLogin = &now

	utils.Logger.WithField("user_id", user.ID).Info("user logged in")
	return user, pair, nil
}

// Logout revokes both tokens of the session. The access token is
// best-effort; a refresh token that fails to parse is reported back so
// the endpoint can answer 400, though the caller still clears cookies.
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken != "" {
		if err := s.jwt.BlacklistToken(ctx, accessToken, "logout"); err != nil && !errors.Is(err, ErrInvalidToken) {
			utils.Logger.WithError(err).Warn("failed to blacklist access token on logout")
		}
	}
	if refreshToken == "" {
		return nil
	}
	if err := s.jwt.BlacklistToken(ctx, refreshToken, "logout"); err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return err
		}
		utils.Logger.WithError(err).Warn("failed to blacklist refresh token on logout")
	}
	return nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return s.jwt.RefreshAccessToken(ctx, refreshToken)
}

// UserByID loads an account, mapping missing and disabled accounts to
// sentinel errors.
func (s *AuthService) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

// ------------------------------------------------------------------
// Profile
// ------------------------------------------------------------------

type ProfileUpdateParams struct {
	FirstName  string
	LastName   string
	Phone      string
	AvatarURL  string
	Bio        string
	BirthDate  *time.Time
	Address    string
	City       string
	Country    string
	PostalCode string
}

func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, *models.UserProfile, error) {
	user, err := s.UserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading profile: %w", err)
	}
	return user, profile, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, p ProfileUpdateParams) (*models.User, *models.UserProfile, error) {
	user, err := s.UserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	user.FirstName = strings.TrimSpace(p.FirstName)
	user.LastName = strings.TrimSpace(p.LastName)
	user.Phone = strings.TrimSpace(p.Phone)
	if err := s.users.UpdateProfileFields(ctx, user); err != nil {
		return nil, nil, err
	}

	profile := &models.UserProfile{
		UserID:     userID,
		AvatarURL:  p.AvatarURL,
		Bio:        p.Bio,
		BirthDate:  p.BirthDate,
		Address:    p.Address,
		City:       p.City,
		Country:    p.Country,
		PostalCode: p.PostalCode,
	}
	if err := s.users.UpsertProfile(ctx, profile); err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}

// ------------------------------------------------------------------
// Password management
// ------------------------------------------------------------------

// ChangePassword verifies the current password before setting the new
// one, then revokes the caller's tokens so old sessions die with the old
// password.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next, accessToken, refreshToken string) error {
	user, err := s.UserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(current, user.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := utils.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	s.Logout(ctx, accessToken, refreshToken)
	utils.Logger.WithField("user_id", userID).Info("password changed")
	return nil
}

// RequestPasswordReset issues a reset token for the account. Unknown
// emails return the token's absence silently: the endpoint must respond
// identically either way.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*models.PasswordResetToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, nil
	}

	if err := s.resets.InvalidateForUser(ctx, user.ID); err != nil {
		return nil, err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generating reset token: %w", err)
	}

	token := &models.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     hex.EncodeToString(raw),
		ExpiresAt: time.Now().Add(passwordResetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return nil, err
	}

	utils.Logger.WithField("user_id", user.ID).Info("password reset requested")
	return token, nil
}

// ConfirmPasswordReset consumes a reset token and sets the new password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, rawToken, newPassword string) error {
	token, err := s.resets.GetByToken(ctx, rawToken)
	if err != nil {
		return fmt.Errorf("loading reset token: %w", err)
	}
	if token == nil || token.IsUsed || token.IsExpired(time.Now()) {
		return ErrResetTokenInvalid
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, token.UserID, hash); err != nil {
		return err
	}
	if err := s.resets.MarkUsed(ctx, token.ID); err != nil {
		return err
	}

	utils.Logger.WithField("user_id", token.UserID).Info("password reset completed")
	return nil
}

// usernameFromEmail derives a display handle from the local part of the
// email when the client does not pick one.
func usernameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
