package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/acarlier/MT-BookingService/internal/domain"
	"github.com/acarlier/MT-BookingService/pkg/dbmetrics"
	"github.com/acarlier/MT-BookingService/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"image",
	"category",
}

// Repository репозиторий каталога услуг (PostgreSQL)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Seed идемпотентно загружает стартовый каталог услуг.
// Услуги идентифицируются по имени: существующие строки не изменяются,
// поэтому ID услуг стабильны между перезапусками.
func (r *Repository) Seed(ctx context.Context, services []*domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, svc := range services {
		query, args, err := psqlbuilder.Insert("services").
			Columns(
				"id",
				"name",
				"description",
				"duration_minutes",
				"price",
				"image",
				"category",
			).
			Values(
				uuid.NewString(),
				svc.Name,
				svc.Description,
				svc.DurationMinutes,
				svc.Price,
				svc.Image,
				svc.Category,
			).
			Suffix("ON CONFLICT (name) DO NOTHING").
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: Seed - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Seed - execute insert: %v", ErrExecQuery, err)
		}
	}

	return nil
}

// ListAll получает все услуги каталога
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("category ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.Description,
			&svc.DurationMinutes,
			&svc.Price,
			&svc.Image,
			&svc.Category,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.DurationMinutes,
		&svc.Price,
		&svc.Image,
		&svc.Category,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}
