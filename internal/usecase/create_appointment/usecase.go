package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acarlier/MT-BookingService/internal/domain"
	appointmentRepo "github.com/acarlier/MT-BookingService/internal/infra/storage/appointment"
	serviceRepo "github.com/acarlier/MT-BookingService/internal/infra/storage/service"
	"github.com/acarlier/MT-BookingService/pkg/types"
)

// UseCase use case создания записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет допуск записи: валидация, перепроверка доступности
// слота на момент коммита и сохранение.
//
// Доступность, на которую смотрел клиент при выборе слота, могла
// устареть к моменту отправки формы, поэтому она всегда перепроверяется
// здесь. Перепроверка и вставка выполняются внутри DoSerializable:
// для PostgreSQL это сериализуемая транзакция с FOR UPDATE выборкой,
// для in-memory хранилища - эксклюзивный мьютекс. В обоих случаях два
// конкурентных запроса на один (дата, время) не могут пройти проверку
// одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%s, date=%s, time=%s",
		req.ServiceID, req.Date, req.Time)

	// 1. Структурная валидация
	if verr := validateRequest(req); verr != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", verr)
		return nil, verr
	}

	// 2. Услуга должна существовать в каталоге
	if _, err := uc.serviceRepo.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Запись на прошедшую дату не принимается
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		// Формат уже проверен валидацией
		return nil, fmt.Errorf("%w: failed to parse date: %v", ErrInternal, err)
	}
	if isDateInPast(date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date)
		return nil, ErrDateInPast
	}

	var result *domain.Appointment

	// 4. Перепроверка доступности + вставка в одной критической секции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appointments, err := uc.appointmentRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments for date=%s: %v", req.Date, err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if !isSlotFree(req.Time, appointments) {
			uc.logger.Warn("CreateAppointment: slot %s %s is no longer available", req.Date, req.Time)
			return ErrSlotNotAvailable
		}

		appt := &domain.Appointment{
			ServiceID: req.ServiceID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Date:      req.Date,
			Time:      req.Time,
			Comments:  req.Comments,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Уникальный индекс хранилища - последний рубеж против double-booking
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s %s taken at insert time", req.Date, req.Time)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s for %s %s", result.ID, result.Date, result.Time)

	return &Response{
		ID:        result.ID,
		ServiceID: result.ServiceID,
		FirstName: result.FirstName,
		LastName:  result.LastName,
		Email:     result.Email,
		Phone:     result.Phone,
		Date:      result.Date,
		Time:      result.Time,
		Comments:  result.Comments,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
	}, nil
}

// isSlotFree проверяет, что время свободно: оно входит в каталог слотов
// и не занято подтвержденной записью
func isSlotFree(t types.TimeString, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if appt.Time == t && appt.IsConfirmed() {
			return false
		}
	}
	return domain.IsBookableSlot(t)
}
