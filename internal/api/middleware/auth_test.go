package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newProtectedHandler(token string) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return AdminAuth(token)(next)
}

func TestAdminAuth_MissingToken(t *testing.T) {
	handler := newProtectedHandler("secret")

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message": "unauthorized"}`, rec.Body.String())
}

func TestAdminAuth_WrongToken(t *testing.T) {
	handler := newProtectedHandler("secret")

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	req.Header.Set(AdminTokenHeader, "guess")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_ValidToken(t *testing.T) {
	handler := newProtectedHandler("secret")

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	req.Header.Set(AdminTokenHeader, "secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
