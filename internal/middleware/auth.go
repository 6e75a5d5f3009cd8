package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kaudaouda/Anac-backend/internal/models"
	"github.com/kaudaouda/Anac-backend/internal/services"
	"github.com/kaudaouda/Anac-backend/internal/utils"
)

type contextKey string

// ContextKeyUser carries the authenticated *models.User.
const ContextKeyUser contextKey = "auth_user"

// UserFromContext returns the authenticated user, or nil for anonymous
// requests.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(ContextKeyUser).(*models.User)
	return user
}

// AuthMiddleware resolves the access-token cookie into a user. The
// strict variant rejects the request when anything fails; the optional
// variant passes the request through anonymously. Neither response body
// ever says why the token was refused.
type AuthMiddleware struct {
	jwt  *services.JWTService
	auth *services.AuthService
}

func NewAuthMiddleware(jwtService *services.JWTService, authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtService, auth: authService}
}

// resolveUser walks the full chain: cookie, signature + expiry,
// blacklist, account load, active flag. Any failure yields nil.
func (m *AuthMiddleware) resolveUser(r *http.Request) *models.User {
	cookie, err := r.Cookie(utils.AccessTokenCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	claims, err := m.jwt.ValidateToken(r.Context(), cookie.Value, models.TokenTypeAccess)
	if err != nil {
		return nil
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}

	user, err := m.auth.UserByID(r.Context(), userID)
	if err != nil {
		return nil
	}
	return user
}

// Require rejects unauthenticated requests with a generic 401.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := m.resolveUser(r)
		if user == nil {
			utils.RespondErrorWithCode(w, http.StatusUnauthorized,
				utils.ErrCodeUnauthorized, "authentication required", nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ContextKeyUser, user)))
	})
}

// Optional attaches the user when the cookie checks out and stays
// anonymous otherwise. Handlers downstream must treat a nil user as a
// logged-out visitor.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := m.resolveUser(r); user != nil {
			r = r.WithContext(context.WithValue(r.Context(), ContextKeyUser, user))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireStaff must run after Require; it gates the admin surfaces.
func (m *AuthMiddleware) RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil || !user.IsStaff {
			utils.RespondErrorWithCode(w, http.StatusForbidden,
				utils.ErrCodeForbidden, "staff access required", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
