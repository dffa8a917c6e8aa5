package create_contact_message

import (
	"context"

	"github.com/acarlier/MT-BookingService/internal/domain"
	"github.com/acarlier/MT-BookingService/internal/service/contact"
)

type ContactService interface {
	Create(ctx context.Context, req *contact.CreateMessageRequest) (*domain.ContactMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
