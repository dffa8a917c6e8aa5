package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/acarlier/MT-BookingService/internal/domain"
	storage "github.com/acarlier/MT-BookingService/internal/infra/storage/appointment"
)

// AppointmentRepository in-memory реализация репозитория записей.
// Хранит записи в map'е под RWMutex; порядок вставки сохраняется
// отдельным слайсом для детерминированных выборок.
//
// Возвращает те же sentinel ошибки, что и PostgreSQL репозиторий,
// поэтому вышестоящие слои не различают backend'ы.
type AppointmentRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Appointment
	order []string
}

// NewAppointmentRepository создает пустой in-memory репозиторий записей
func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{
		byID: make(map[string]*domain.Appointment),
	}
}

// Create сохраняет новую запись на приём.
// Вставка условная: если на (дата, время) уже есть подтвержденная запись,
// возвращается storage.ErrSlotTaken. Проверка и вставка выполняются под
// одним захватом мьютекса, т.е. атомарно относительно других вставок -
// in-memory аналог частичного уникального индекса БД.
func (r *AppointmentRepository) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		existing := r.byID[id]
		if existing.Date == appt.Date && existing.Time == appt.Time && existing.IsConfirmed() {
			return nil, storage.ErrSlotTaken
		}
	}

	stored := *appt
	stored.ID = uuid.NewString()
	stored.Status = domain.StatusConfirmed
	stored.CreatedAt = time.Now()

	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	result := stored
	return &result, nil
}

// GetByDate получает все записи на указанную дату независимо от статуса,
// в порядке вставки
func (r *AppointmentRepository) GetByDate(_ context.Context, date string) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]*domain.Appointment, 0)
	for _, id := range r.order {
		appt := r.byID[id]
		if appt.Date == date {
			copied := *appt
			appointments = append(appointments, &copied)
		}
	}

	return appointments, nil
}

// GetByID получает запись по ID
func (r *AppointmentRepository) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appt, ok := r.byID[id]
	if !ok {
		return nil, storage.ErrAppointmentNotFound
	}

	copied := *appt
	return &copied, nil
}

// ListAll получает все записи в порядке вставки
func (r *AppointmentRepository) ListAll(_ context.Context) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]*domain.Appointment, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.byID[id]
		appointments = append(appointments, &copied)
	}

	return appointments, nil
}

// UpdateStatus обновляет статус записи. Остальные поля не затрагиваются.
func (r *AppointmentRepository) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.byID[id]
	if !ok {
		return nil, storage.ErrAppointmentNotFound
	}

	appt.Status = status

	copied := *appt
	return &copied, nil
}
