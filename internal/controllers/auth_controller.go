package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/kaudaouda/Anac-backend/internal/dtos"
	"github.com/kaudaouda/Anac-backend/internal/middleware"
	"github.com/kaudaouda/Anac-backend/internal/services"
	"github.com/kaudaouda/Anac-backend/internal/utils"
)

// AuthController owns the session lifecycle: register, login, refresh,
// logout, plus the account-management endpoints behind them. Tokens ride
// in HttpOnly cookies; the JSON bodies never contain them.
type AuthController struct {
	auth         *services.AuthService
	jwt          *services.JWTService
	validate     *validator.Validate
	secureCookie bool
}

func NewAuthController(auth *services.AuthService, jwtService *services.JWTService, secureCookie bool) *AuthController {
	return &AuthController{
		auth:         auth,
		jwt:          jwtService,
		validate:     validator.New(),
		secureCookie: secureCookie,
	}
}

func (c *AuthController) setSessionCookies(w http.ResponseWriter, pair *services.TokenPair) {
	utils.SetAuthCookies(w, pair.AccessToken, pair.RefreshToken,
		c.jwt.AccessTTL(), c.jwt.RefreshTTL(), c.secureCookie)
}

// Register handles POST /auth/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	user, pair, err := c.auth.Register(r.Context(), services.RegisterParams{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		utils.RespondErrorWithCode(w, http.StatusConflict,
			utils.ErrCodeConflict, "email already registered", nil)
		return
	case err != nil:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "registration failed", nil, err)
		return
	}

	c.setSessionCookies(w, pair)
	utils.RespondWithJSON(w, http.StatusCreated, dtos.LoginResponse{
		Message: "registration successful",
		User:    dtos.NewUserDetail(user),
	})
}

// Login handles POST /auth/login. The failure response is identical for
// unknown emails, wrong passwords and disabled accounts.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	user, pair, err := c.auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondErrorWithCode(w, http.StatusUnauthorized,
			utils.ErrCodeInvalidCredentials, "incorrect email or password", nil)
		return
	case err != nil:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "login failed", nil, err)
		return
	}

	c.setSessionCookies(w, pair)
	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		Message: "login successful",
		User:    dtos.NewUserDetail(user),
	})
}

// Logout handles POST /auth/logout. The refresh token may arrive in the
// JSON body or the cookie. Cookies are cleared no matter what, even when
// the supplied token turns out to be garbage.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	refreshToken := body.RefreshToken
	if refreshToken == "" {
		refreshToken = cookieValue(r, utils.RefreshTokenCookieName)
	}

	err := c.auth.Logout(r.Context(), cookieValue(r, utils.AccessTokenCookieName), refreshToken)
	utils.ClearAuthCookies(w, c.secureCookie)
	if errors.Is(err, services.ErrInvalidToken) {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeInvalidToken, "invalid refresh token", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.LogoutResponse{Message: "logout successful"})
}

// RefreshToken handles POST /auth/refresh-token. The refresh token is
// read from the cookie first and falls back to the JSON body for
// clients that manage tokens themselves.
func (c *AuthController) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := cookieValue(r, utils.RefreshTokenCookieName)
	if refreshToken == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		refreshToken = body.RefreshToken
	}
	if refreshToken == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeInvalidPayload, "refresh token required", nil)
		return
	}

	accessToken, err := c.auth.Refresh(r.Context(), refreshToken)
	switch {
	case errors.Is(err, services.ErrInvalidToken):
		utils.ClearAuthCookies(w, c.secureCookie)
		utils.RespondErrorWithCode(w, http.StatusUnauthorized,
			utils.ErrCodeInvalidToken, "invalid or expired refresh token", nil)
		return
	case err != nil:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "token refresh failed", nil, err)
		return
	}

	utils.SetAccessCookie(w, accessToken, c.jwt.AccessTTL(), c.secureCookie)
	utils.RespondWithJSON(w, http.StatusOK, dtos.RefreshTokenResponse{Message: "token refreshed"})
}

// CheckAuth handles GET /auth/check-auth. It sits behind the optional
// middleware and reports the session state without ever returning 401.
func (c *AuthController) CheckAuth(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		utils.RespondWithJSON(w, http.StatusOK, dtos.CheckAuthResponse{IsAuthenticated: false})
		return
	}
	detail := dtos.NewUserDetail(user)
	utils.RespondWithJSON(w, http.StatusOK, dtos.CheckAuthResponse{
		IsAuthenticated: true,
		User:            &detail,
	})
}

// Profile handles GET /auth/profile.
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	_, profile, err := c.auth.Profile(r.Context(), user.ID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to load profile", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.ProfileResponse{
		User:    dtos.NewUserDetail(user),
		Profile: profile,
	})
}

// UpdateProfile handles PUT /auth/profile.
func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req dtos.UpdateProfileRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	updated, profile, err := c.auth.UpdateProfile(r.Context(), user.ID, services.ProfileUpdateParams{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		AvatarURL:  req.AvatarURL,
		Bio:        req.Bio,
		BirthDate:  req.BirthDate,
		Address:    req.Address,
		City:       req.City,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to update profile", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.ProfileResponse{
		User:    dtos.NewUserDetail(updated),
		Profile: profile,
	})
}

// ChangePassword handles POST /auth/change-password. On success the
// session tokens are revoked and cookies cleared; the client must log
// in again with the new password.
func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req dtos.ChangePasswordRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	err := c.auth.ChangePassword(r.Context(), user.ID, req.CurrentPassword, req.NewPassword,
		cookieValue(r, utils.AccessTokenCookieName), cookieValue(r, utils.RefreshTokenCookieName))
	switch {
	case errors.Is(err, services.ErrWrongPassword):
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "current password is incorrect", nil)
		return
	case err != nil:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to change password", nil, err)
		return
	}

	utils.ClearAuthCookies(w, c.secureCookie)
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "password changed, please log in again"})
}

// RequestPasswordReset handles POST /auth/password-reset. The response
// is the same whether or not the email exists.
func (c *AuthController) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req dtos.PasswordResetRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	if _, err := c.auth.RequestPasswordReset(r.Context(), req.Email); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to process password reset", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{
		Message: "if the email is registered, a reset link has been sent",
	})
}

// ConfirmPasswordReset handles POST /auth/password-reset/confirm.
func (c *AuthController) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req dtos.PasswordResetConfirmRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	err := c.auth.ConfirmPasswordReset(r.Context(), req.Token, req.NewPassword)
	switch {
	case errors.Is(err, services.ErrResetTokenInvalid):
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeInvalidToken, "invalid or expired reset token", nil)
		return
	case err != nil:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError,
			utils.ErrCodeInternal, "failed to reset password", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "password reset successful"})
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
