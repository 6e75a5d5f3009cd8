// Helpers for issuing / clearing the JWT auth cookies plus the
// security-header block every token-bearing response should carry.
package utils

import (
	"net/http"
	"time"
)

// Cookie names are part of the public contract with the frontend;
// do not rename without coordinating a client release.
const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	// IsAuthenticatedCookieName is readable by client-side script as a
	// UI hint only. It carries no security weight and the server never
	// trusts it.
	IsAuthenticatedCookieName = "is_authenticated"
)

// SetAuthCookies writes the two HttpOnly token cookies and the
// client-visible is_authenticated flag. `secure` should be true on any
// deployment that is not a local dev instance.
func SetAuthCookies(
	w http.ResponseWriter,
	accessToken string,
	refreshToken string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
	secure bool,
) {
	if accessToken == "" || refreshToken == "" {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(accessTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	// Not HttpOnly: the SPA reads it to decide whether to render the
	// logged-in shell before the first API round-trip.
	http.SetCookie(w, &http.Cookie{
		Name:     IsAuthenticatedCookieName,
		Value:    "true",
		Path:     "/",
		MaxAge:   int(accessTTL.Seconds()),
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	addSecurityHeaders(w)
}

// SetAccessCookie refreshes only the access token and the
// is_authenticated flag, leaving the refresh-token cookie untouched.
// Used by the token refresh endpoint.
func SetAccessCookie(w http.ResponseWriter, accessToken string, accessTTL time.Duration, secure bool) {
	if accessToken == "" {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(accessTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     IsAuthenticatedCookieName,
		Value:    "true",
		Path:     "/",
		MaxAge:   int(accessTTL.Seconds()),
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	addSecurityHeaders(w)
}

// ClearAuthCookies deletes all three cookies. Safe to call when the
// cookies were never set.
func ClearAuthCookies(w http.ResponseWriter, secure bool) {
	for _, name := range []string{
		AccessTokenCookieName,
		RefreshTokenCookieName,
		IsAuthenticatedCookieName,
	} {
		httpOnly := name != IsAuthenticatedCookieName
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Now().Add(-1 * time.Hour).UTC(),
			MaxAge:   -1,
			HttpOnly: httpOnly,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}

	addSecurityHeaders(w)
}

func addSecurityHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Cache-Control", "no-store")
	h.Set("Pragma", "no-cache")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-Frame-Options", "DENY")
	h.Set("Referrer-Policy", "no-referrer")
}
