package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/acarlier/MT-BookingService/internal/domain"
	appointmentRepo "github.com/acarlier/MT-BookingService/internal/infra/storage/appointment"
)

// Service сервис для чтения и администрирования записей
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List возвращает все записи (административная выборка)
func (s *Service) List(ctx context.Context) ([]*domain.Appointment, error) {
	appointments, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return appointments, nil
}

// GetByID возвращает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return appt, nil
}

// UpdateStatus переводит запись в новый статус.
// Отмена разрешена только из статуса confirmed; отмененная запись
// освобождает свой слот для новых бронирований.
func (s *Service) UpdateStatus(ctx context.Context, id string, rawStatus string) (*domain.Appointment, error) {
	s.logger.Info("UpdateStatus: appointment id=%s -> status=%s", id, rawStatus)

	status, ok := domain.ParseAppointmentStatus(rawStatus)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status %q for appointment id=%s", rawStatus, id)
		return nil, ErrInvalidStatus
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if status == domain.StatusCancelled && !appt.CanBeCancelled() {
		s.logger.Warn("UpdateStatus: appointment id=%s cannot be cancelled, status=%s", id, appt.Status)
		return nil, ErrCannotCancel
	}

	updated, err := s.appointmentRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%s updated to status=%s", id, status)
	return updated, nil
}
