package list_services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acarlier/MT-BookingService/internal/api/handlers"
	"github.com/acarlier/MT-BookingService/internal/infra/storage/memory"
	"github.com/acarlier/MT-BookingService/internal/infra/storage/seed"
	catalogService "github.com/acarlier/MT-BookingService/internal/service/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	repo := memory.NewServiceRepository(seed.Services())
	handler := NewHandler(catalogService.NewService(repo, nopLogger{}), nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body []*handlers.ServiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, len(seed.Services()))

	for _, svc := range body {
		assert.NotEmpty(t, svc.ID)
		assert.NotEmpty(t, svc.Name)
		assert.Greater(t, svc.Duration, 0)
		assert.Greater(t, svc.Price, 0.0)
		assert.NotEmpty(t, svc.Category)
	}
}
