package list_appointments

import (
	"context"

	"github.com/acarlier/MT-BookingService/internal/domain"
)

type AppointmentsService interface {
	List(ctx context.Context) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
