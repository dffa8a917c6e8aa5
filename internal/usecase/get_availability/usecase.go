package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/acarlier/MT-BookingService/internal/domain"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute вычисляет свободные слоты: каталог слотов минус времена
// подтвержденных записей на дату. Детерминированный read-only запрос;
// политика "не в прошлом" сюда намеренно не входит - она применяется
// только при создании записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		uc.logger.Warn("GetAvailability: invalid date %q: %v", req.Date, err)
		return nil, ErrInvalidDate
	}

	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	available := freeSlots(appointments)

	uc.logger.Info("GetAvailability: date=%s, %d of %d slots free",
		req.Date, len(available), len(domain.SlotsForDay()))

	return &Response{
		Date:           req.Date,
		AvailableSlots: available,
	}, nil
}
