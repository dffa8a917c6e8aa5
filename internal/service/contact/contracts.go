package contact

import (
	"context"

	"github.com/acarlier/MT-BookingService/internal/domain"
)

// ContactRepository интерфейс репозитория сообщений контактной формы
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	ListAll(ctx context.Context) ([]*domain.ContactMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
