package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acarlier/MT-BookingService/internal/api/handlers"
	"github.com/acarlier/MT-BookingService/internal/domain"
	"github.com/acarlier/MT-BookingService/internal/infra/storage/memory"
	getAvailability "github.com/acarlier/MT-BookingService/internal/usecase/get_availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(t *testing.T) (*mux.Router, *memory.AppointmentRepository) {
	t.Helper()

	repo := memory.NewAppointmentRepository()
	handler := NewHandler(getAvailability.NewUseCase(repo, nopLogger{}), nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/appointments/availability/{date}", handler.Handle).Methods(http.MethodGet)

	return r, repo
}

func TestHandle_EmptyDay(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/appointments/availability/2026-10-15", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"09:00", "10:30", "12:00", "13:30", "15:00", "16:30", "18:00"}, body.AvailableSlots)
}

func TestHandle_BookedSlotExcluded(t *testing.T) {
	router, repo := newTestRouter(t)

	_, err := repo.Create(context.Background(), &domain.Appointment{
		ServiceID: "svc-1",
		FirstName: "Marie",
		LastName:  "Dupont",
		Email:     "marie@example.com",
		Phone:     "+33612345678",
		Date:      "2026-10-15",
		Time:      "10:30",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/appointments/availability/2026-10-15", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"09:00", "12:00", "13:30", "15:00", "16:30", "18:00"}, body.AvailableSlots)
}

func TestHandle_InvalidDate(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/appointments/availability/15-10-2026", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid date, expected YYYY-MM-DD", body.Message)
}
