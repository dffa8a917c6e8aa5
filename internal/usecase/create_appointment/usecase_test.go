package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acarlier/MT-BookingService/internal/domain"
	"github.com/acarlier/MT-BookingService/internal/infra/storage/memory"
	"github.com/acarlier/MT-BookingService/pkg/ptr"
	"github.com/acarlier/MT-BookingService/pkg/types"
)

const testServiceID = "svc-massage-thai"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fixedTimeProvider возвращает зафиксированное "сейчас"
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestUseCase(t *testing.T) (*UseCase, *memory.AppointmentRepository) {
	t.Helper()

	appointments := memory.NewAppointmentRepository()
	services := memory.NewServiceRepository([]*domain.Service{
		{
			ID:              testServiceID,
			Name:            "Massage Thaï Traditionnel",
			DurationMinutes: 90,
			Price:           80,
			Category:        domain.CategoryThai,
		},
	})

	uc := NewUseCase(appointments, services, memory.NewTxManager(), nopLogger{})
	// Все тестовые даты относительно фиксированного "сегодня"
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)}

	return uc, appointments
}

func validRequest() *Request {
	return &Request{
		ServiceID: testServiceID,
		FirstName: "Marie",
		LastName:  "Dupont",
		Email:     "marie.dupont@example.com",
		Phone:     "+33612345678",
		Date:      "2026-10-15",
		Time:      "10:30",
		Comments:  ptr.Ptr("Premier rendez-vous"),
	}
}

func TestExecute_Success(t *testing.T) {
	uc, repo := newTestUseCase(t)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, testServiceID, resp.ServiceID)
	assert.Equal(t, "Marie", resp.FirstName)
	assert.Equal(t, "Dupont", resp.LastName)
	assert.Equal(t, "2026-10-15", resp.Date)
	assert.Equal(t, types.TimeString("10:30"), resp.Time)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.False(t, resp.CreatedAt.IsZero())
	require.NotNil(t, resp.Comments)
	assert.Equal(t, "Premier rendez-vous", *resp.Comments)

	stored, err := repo.GetByDate(ctx, "2026-10-15")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, resp.ID, stored[0].ID)
}

func TestExecute_SlotAlreadyTaken(t *testing.T) {
	uc, repo := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.FirstName = "Jean"
	second.Email = "jean@example.com"

	_, err = uc.Execute(ctx, second)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Проигравший запрос ничего не записал
	stored, err := repo.GetByDate(ctx, "2026-10-15")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestExecute_SameSlotDifferentDates(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.Date = "2026-10-16"

	_, err = uc.Execute(ctx, other)
	assert.NoError(t, err)
}

func TestExecute_CancelledAppointmentDoesNotBlockSlot(t *testing.T) {
	uc, repo := newTestUseCase(t)
	ctx := context.Background()

	first, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, first.ID, domain.StatusCancelled)
	require.NoError(t, err)

	second := validRequest()
	second.FirstName = "Jean"

	resp, err := uc.Execute(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, resp.ID)
}

func TestExecute_UnknownService(t *testing.T) {
	uc, _ := newTestUseCase(t)

	req := validRequest()
	req.ServiceID = "no-such-service"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_DateInPast(t *testing.T) {
	uc, repo := newTestUseCase(t)

	req := validRequest()
	req.Date = "2026-09-30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)

	stored, err := repo.GetByDate(context.Background(), "2026-09-30")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestExecute_TodayIsNotPast(t *testing.T) {
	uc, _ := newTestUseCase(t)

	req := validRequest()
	req.Date = "2026-10-01"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Request)
		field  string
	}{
		{
			name:   "missing service id",
			modify: func(r *Request) { r.ServiceID = "" },
			field:  "serviceId",
		},
		{
			name:   "missing first name",
			modify: func(r *Request) { r.FirstName = "  " },
			field:  "firstName",
		},
		{
			name:   "missing last name",
			modify: func(r *Request) { r.LastName = "" },
			field:  "lastName",
		},
		{
			name:   "missing email",
			modify: func(r *Request) { r.Email = "" },
			field:  "email",
		},
		{
			name:   "malformed email",
			modify: func(r *Request) { r.Email = "not-an-email" },
			field:  "email",
		},
		{
			name:   "missing phone",
			modify: func(r *Request) { r.Phone = "" },
			field:  "phone",
		},
		{
			name:   "malformed date",
			modify: func(r *Request) { r.Date = "15-10-2026" },
			field:  "date",
		},
		{
			name:   "missing time",
			modify: func(r *Request) { r.Time = "" },
			field:  "time",
		},
		{
			name:   "malformed time",
			modify: func(r *Request) { r.Time = "25:99" },
			field:  "time",
		},
		{
			name:   "time outside slot catalog",
			modify: func(r *Request) { r.Time = "11:00" },
			field:  "time",
		},
		{
			name:   "comments too long",
			modify: func(r *Request) { r.Comments = ptr.Ptr(string(make([]byte, domain.MaxCommentsLength+1))) },
			field:  "comments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newTestUseCase(t)

			req := validRequest()
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Contains(t, fields, tt.field)

			// Невалидный запрос до хранилища не доходит
			stored, err := repo.ListAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, stored)
		})
	}
}

func TestExecute_ConcurrentRequestsAdmitExactlyOne(t *testing.T) {
	uc, repo := newTestUseCase(t)
	ctx := context.Background()

	const workers = 16

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(ctx, validRequest())
		}(i)
	}
	wg.Wait()

	var created, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		default:
			require.ErrorIs(t, err, ErrSlotNotAvailable)
			rejected++
		}
	}

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, rejected)

	stored, err := repo.GetByDate(ctx, "2026-10-15")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestIsSlotFree(t *testing.T) {
	confirmed := &domain.Appointment{Date: "2026-10-15", Time: "10:30", Status: domain.StatusConfirmed}
	cancelled := &domain.Appointment{Date: "2026-10-15", Time: "12:00", Status: domain.StatusCancelled}

	appointments := []*domain.Appointment{confirmed, cancelled}

	assert.False(t, isSlotFree("10:30", appointments))
	assert.True(t, isSlotFree("12:00", appointments))
	assert.True(t, isSlotFree("09:00", appointments))
	// Время вне каталога слотов несвободно по определению
	assert.False(t, isSlotFree("11:00", nil))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 10, 1, 23, 59, 0, 0, time.UTC)

	yesterday := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, isDateInPast(yesterday, now))
	assert.False(t, isDateInPast(today, now))
	assert.False(t, isDateInPast(tomorrow, now))
}
