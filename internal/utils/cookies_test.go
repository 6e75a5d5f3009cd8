package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSetAuthCookiesAttributes(t *testing.T) {
	rec := httptest.NewRecorder()
	SetAuthCookies(rec, "access-value", "refresh-value", 30*time.Minute, 24*time.Hour, true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 3)

	access := cookieByName(cookies, AccessTokenCookieName)
	require.NotNil(t, access)
	assert.Equal(t, "access-value", access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, "/", access.Path)
	assert.Equal(t, http.SameSiteLaxMode, access.SameSite)
	assert.Equal(t, 1800, access.MaxAge)

	refresh := cookieByName(cookies, RefreshTokenCookieName)
	require.NotNil(t, refresh)
	assert.True(t, refresh.HttpOnly)
	assert.Equal(t, 86400, refresh.MaxAge)

	flag := cookieByName(cookies, IsAuthenticatedCookieName)
	require.NotNil(t, flag)
	assert.Equal(t, "true", flag.Value)
	assert.False(t, flag.HttpOnly)
	assert.Equal(t, 1800, flag.MaxAge)
}

func TestSetAuthCookiesSkipsEmptyTokens(t *testing.T) {
	rec := httptest.NewRecorder()
	SetAuthCookies(rec, "", "refresh-value", time.Minute, time.Hour, true)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSetAuthCookiesInsecureInDev(t *testing.T) {
	rec := httptest.NewRecorder()
	SetAuthCookies(rec, "a", "r", time.Minute, time.Hour, false)

	for _, c := range rec.Result().Cookies() {
		assert.False(t, c.Secure, c.Name)
	}
}

func TestSetAccessCookieLeavesRefreshAlone(t *testing.T) {
	rec := httptest.NewRecorder()
	SetAccessCookie(rec, "new-access", 30*time.Minute, true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.NotNil(t, cookieByName(cookies, AccessTokenCookieName))
	assert.NotNil(t, cookieByName(cookies, IsAuthenticatedCookieName))
	assert.Nil(t, cookieByName(cookies, RefreshTokenCookieName))
}

func TestClearAuthCookiesExpiresAllThree(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearAuthCookies(rec, true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 3)
	for _, c := range cookies {
		assert.Empty(t, c.Value, c.Name)
		assert.Equal(t, -1, c.MaxAge, c.Name)
		assert.True(t, c.Expires.Before(time.Now()), c.Name)
	}
}

func TestAuthResponsesCarrySecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SetAuthCookies(rec, "a", "r", time.Minute, time.Hour, true)

	h := rec.Header()
	assert.Equal(t, "no-store", h.Get("Cache-Control"))
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
}
