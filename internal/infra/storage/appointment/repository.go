package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/acarlier/MT-BookingService/internal/domain"
	"github.com/acarlier/MT-BookingService/pkg/dbmetrics"
	"github.com/acarlier/MT-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"service_id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"appointment_date",
	"start_time",
	"comments",
	"status",
	"created_at",
}

// Repository репозиторий для работы с записями на приём (PostgreSQL)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись на приём.
// ID и CreatedAt проставляются хранилищем, статус - confirmed.
//
// Инвариант "не более одной подтвержденной записи на (дата, время)"
// обеспечивается частичным уникальным индексом
// appointments_slot_confirmed_idx; его нарушение возвращается как
// ErrSlotTaken. Таким образом double-booking невозможен на уровне БД,
// даже если вызывающий код не перепроверил доступность.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	appt.ID = uuid.NewString()
	appt.Status = domain.StatusConfirmed

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"service_id",
			"first_name",
			"last_name",
			"email",
			"phone",
			"appointment_date",
			"start_time",
			"comments",
			"status",
		).
		Values(
			appt.ID,
			appt.ServiceID,
			appt.FirstName,
			appt.LastName,
			appt.Email,
			appt.Phone,
			appt.Date,
			appt.Time,
			appt.Comments,
			appt.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// GetByDate получает все записи на указанную дату, независимо от статуса.
// Фильтрация по статусу - ответственность вызывающего кода.
// Порядок - по времени создания (стабильный для тестов).
//
// Внутри транзакции строки блокируются (FOR UPDATE) - используется
// usecase'ом создания записи для закрытия гонки check-then-act.
func (r *Repository) GetByDate(ctx context.Context, date string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"appointment_date": date}).
		OrderBy("created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	appt, err := r.scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// ListAll получает все записи (административная выборка)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("appointment_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus обновляет статус записи. Остальные поля не затрагиваются.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return nil, ErrAppointmentNotFound
	}

	return r.GetByID(ctx, id)
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt      domain.Appointment
		date      time.Time
		createdAt sql.NullTime
	)

	err := row.Scan(
		&appt.ID,
		&appt.ServiceID,
		&appt.FirstName,
		&appt.LastName,
		&appt.Email,
		&appt.Phone,
		&date,
		&appt.Time,
		&appt.Comments,
		&appt.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	appt.Date = date.Format(domain.DateFormat)
	appt.CreatedAt = createdAt.Time

	return &appt, nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
