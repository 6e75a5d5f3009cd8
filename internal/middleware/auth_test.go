package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

func requestWithUser(user *models.User) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, user))
	}
	return req
}

func TestUserFromContextAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, UserFromContext(req.Context()))
}

func TestUserFromContextAuthenticated(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "pilot@example.com"}
	req := requestWithUser(user)
	assert.Equal(t, user, UserFromContext(req.Context()))
}

func TestRequireStaffRejectsNonStaff(t *testing.T) {
	mw := &AuthMiddleware{}
	called := false
	handler := mw.RequireStaff(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithUser(&models.User{ID: uuid.New()}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireStaffRejectsAnonymous(t *testing.T) {
	mw := &AuthMiddleware{}
	handler := mw.RequireStaff(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithUser(nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireStaffPassesStaff(t *testing.T) {
	mw := &AuthMiddleware{}
	called := false
	handler := mw.RequireStaff(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithUser(&models.User{ID: uuid.New(), IsStaff: true}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
