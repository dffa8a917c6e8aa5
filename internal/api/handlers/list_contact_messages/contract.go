package list_contact_messages

import (
	"context"

	"github.com/acarlier/MT-BookingService/internal/domain"
)

type ContactService interface {
	List(ctx context.Context) ([]*domain.ContactMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
