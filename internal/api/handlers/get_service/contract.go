package get_service

import (
	"context"

	"github.com/acarlier/MT-BookingService/internal/domain"
)

type CatalogService interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
