package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/acarlier/MT-BookingService/internal/domain"
	serviceRepo "github.com/acarlier/MT-BookingService/internal/infra/storage/service"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает все услуги каталога
func (s *Service) List(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.serviceRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return services, nil
}

// GetByID возвращает услугу по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return svc, nil
}
