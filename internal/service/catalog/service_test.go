package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acarlier/MT-BookingService/internal/infra/storage/memory"
	"github.com/acarlier/MT-BookingService/internal/infra/storage/seed"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestList(t *testing.T) {
	svc := NewService(memory.NewServiceRepository(seed.Services()), nopLogger{})

	services, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Len(t, services, len(seed.Services()))
	for _, s := range services {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Name)
		assert.Greater(t, s.DurationMinutes, 0)
		assert.Greater(t, s.Price, 0.0)
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(memory.NewServiceRepository(seed.Services()), nopLogger{})
	ctx := context.Background()

	services, err := svc.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, services)

	got, err := svc.GetByID(ctx, services[0].ID)
	require.NoError(t, err)
	assert.Equal(t, services[0].Name, got.Name)

	_, err = svc.GetByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
