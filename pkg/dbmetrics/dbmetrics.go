package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/acarlier/MT-BookingService/pkg/metrics"
)

// DBExecutor общий интерфейс для выполнения запросов.
// Реализуется *sql.DB, *sql.Tx и обёрткой *DB.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// DB обёртка над *sql.DB, записывающая метрики запросов.
// Если metrics == nil, работает как прозрачный proxy.
type DB struct {
	db *sql.DB
	m  *metrics.Metrics
}

// Wrap оборачивает *sql.DB в сборщик метрик запросов
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, m: m}
}

// StartPoolStatsCollector запускает горутину, периодически снимающую
// состояние connection pool. Останавливается при закрытии stopCh.
func (d *DB) StartPoolStatsCollector(interval time.Duration, stopCh <-chan struct{}) {
	if d.m == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				stats := d.db.Stats()
				d.m.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)
			case <-stopCh:
				return
			}
		}
	}()
}

// ExecContext выполняет запрос с записью метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

// QueryContext выполняет запрос с записью метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

// QueryRowContext выполняет запрос с записью метрик
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx начинает транзакцию
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	defer d.observe("begin_tx", time.Now())
	return d.db.BeginTx(ctx, opts)
}

func (d *DB) observe(operation string, start time.Time) {
	if d.m == nil {
		return
	}
	d.m.ObserveDBQuery(operation, time.Since(start))
}

// txContextKey ключ контекста для активной транзакции
type txContextKey struct{}

// WithTx кладет активную транзакцию в контекст
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она там есть,
// иначе переданный fallback executor. Позволяет репозиториям прозрачно
// работать как внутри, так и вне транзакции.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction проверяет, выполняется ли контекст внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}
