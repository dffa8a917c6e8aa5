package contact

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/acarlier/MT-BookingService/internal/domain"
	"github.com/acarlier/MT-BookingService/pkg/dbmetrics"
	"github.com/acarlier/MT-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий сообщений контактной формы (PostgreSQL)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сообщений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое сообщение. ID и CreatedAt проставляются хранилищем.
func (r *Repository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	msg.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("contact_messages").
		Columns(
			"id",
			"first_name",
			"last_name",
			"email",
			"subject",
			"message",
		).
		Values(
			msg.ID,
			msg.FirstName,
			msg.LastName,
			msg.Email,
			msg.Subject,
			msg.Message,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	msg.CreatedAt = createdAt.Time

	return msg, nil
}

// ListAll получает все сообщения (административная выборка)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"first_name",
		"last_name",
		"email",
		"subject",
		"message",
		"created_at",
	).
		From("contact_messages").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*domain.ContactMessage, 0)
	for rows.Next() {
		var (
			msg       domain.ContactMessage
			createdAt sql.NullTime
		)
		err := rows.Scan(
			&msg.ID,
			&msg.FirstName,
			&msg.LastName,
			&msg.Email,
			&msg.Subject,
			&msg.Message,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		msg.CreatedAt = createdAt.Time
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return messages, nil
}
