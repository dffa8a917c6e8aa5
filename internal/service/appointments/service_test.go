package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acarlier/MT-BookingService/internal/domain"
	"github.com/acarlier/MT-BookingService/internal/infra/storage/memory"
	"github.com/acarlier/MT-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *memory.AppointmentRepository) {
	t.Helper()
	repo := memory.NewAppointmentRepository()
	return NewService(repo, nopLogger{}), repo
}

func createAppointment(t *testing.T, repo *memory.AppointmentRepository, date string, slot string) *domain.Appointment {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.Appointment{
		ServiceID: "svc-1",
		FirstName: "Marie",
		LastName:  "Dupont",
		Email:     "marie@example.com",
		Phone:     "+33612345678",
		Date:      date,
		Time:      types.TimeString(slot),
	})
	require.NoError(t, err)
	return created
}

func TestList(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	appointments, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, appointments)

	createAppointment(t, repo, "2026-10-15", "09:00")

	appointments, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, appointments, 1)
}

func TestGetByID(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created := createAppointment(t, repo, "2026-10-15", "09:00")

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_Cancel(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created := createAppointment(t, repo, "2026-10-15", "09:00")

	updated, err := svc.UpdateStatus(ctx, created.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, updated.Status)
}

func TestUpdateStatus_CancelTwice(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created := createAppointment(t, repo, "2026-10-15", "09:00")

	_, err := svc.UpdateStatus(ctx, created.ID, "cancelled")
	require.NoError(t, err)

	// Повторная отмена запрещена
	_, err = svc.UpdateStatus(ctx, created.ID, "cancelled")
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created := createAppointment(t, repo, "2026-10-15", "09:00")

	for _, raw := range []string{"", "pending", "CONFIRMED", "done"} {
		_, err := svc.UpdateStatus(ctx, created.ID, raw)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", raw)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), "no-such-id", "cancelled")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
