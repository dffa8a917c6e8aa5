package catalog

import (
	"context"

	"github.com/acarlier/MT-BookingService/internal/domain"
)

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	ListAll(ctx context.Context) ([]*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
