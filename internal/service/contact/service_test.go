package contact

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acarlier/MT-BookingService/internal/domain"
	"github.com/acarlier/MT-BookingService/internal/infra/storage/memory"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validMessage() *CreateMessageRequest {
	return &CreateMessageRequest{
		FirstName: "Marie",
		LastName:  "Dupont",
		Email:     "marie@example.com",
		Subject:   "Question sur les horaires",
		Message:   "Bonjour, êtes-vous ouverts le samedi ?",
	}
}

func TestCreate(t *testing.T) {
	svc := NewService(memory.NewContactRepository(), nopLogger{})

	created, err := svc.Create(context.Background(), validMessage())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Marie", created.FirstName)
	assert.Equal(t, "Question sur les horaires", created.Subject)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*CreateMessageRequest)
		field  string
	}{
		{name: "missing first name", modify: func(r *CreateMessageRequest) { r.FirstName = " " }, field: "firstName"},
		{name: "missing last name", modify: func(r *CreateMessageRequest) { r.LastName = "" }, field: "lastName"},
		{name: "missing email", modify: func(r *CreateMessageRequest) { r.Email = "" }, field: "email"},
		{name: "malformed email", modify: func(r *CreateMessageRequest) { r.Email = "nope" }, field: "email"},
		{name: "missing subject", modify: func(r *CreateMessageRequest) { r.Subject = "" }, field: "subject"},
		{name: "subject too long", modify: func(r *CreateMessageRequest) {
			r.Subject = strings.Repeat("a", domain.MaxSubjectLength+1)
		}, field: "subject"},
		{name: "missing message", modify: func(r *CreateMessageRequest) { r.Message = "" }, field: "message"},
		{name: "message too long", modify: func(r *CreateMessageRequest) {
			r.Message = strings.Repeat("a", domain.MaxMessageLength+1)
		}, field: "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(memory.NewContactRepository(), nopLogger{})

			req := validMessage()
			tt.modify(req)

			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestList(t *testing.T) {
	repo := memory.NewContactRepository()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	messages, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)

	_, err = svc.Create(ctx, validMessage())
	require.NoError(t, err)

	messages, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}
