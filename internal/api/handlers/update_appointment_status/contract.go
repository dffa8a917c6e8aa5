package update_appointment_status

import (
	"context"

	"github.com/acarlier/MT-BookingService/internal/domain"
)

type AppointmentsService interface {
	UpdateStatus(ctx context.Context, id string, rawStatus string) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
