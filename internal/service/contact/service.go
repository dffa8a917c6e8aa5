package contact

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/acarlier/MT-BookingService/internal/domain"
)

// Service сервис сообщений контактной формы
type Service struct {
	contactRepo ContactRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса контактной формы
func NewService(contactRepo ContactRepository, logger Logger) *Service {
	return &Service{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// CreateMessageRequest запрос на создание сообщения
type CreateMessageRequest struct {
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Message   string
}

// Create валидирует и сохраняет сообщение контактной формы
func (s *Service) Create(ctx context.Context, req *CreateMessageRequest) (*domain.ContactMessage, error) {
	if verr := validateMessage(req); verr != nil {
		s.logger.Warn("Create: validation failed: %v", verr)
		return nil, verr
	}

	created, err := s.contactRepo.Create(ctx, &domain.ContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: contact message id=%s created", created.ID)
	return created, nil
}

// List возвращает все сообщения (административная выборка)
func (s *Service) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	messages, err := s.contactRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return messages, nil
}

func validateMessage(req *CreateMessageRequest) *ValidationError {
	var fields []FieldError

	if strings.TrimSpace(req.FirstName) == "" {
		fields = append(fields, FieldError{Field: "firstName", Message: "is required"})
	} else if len(req.FirstName) > domain.MaxNameLength {
		fields = append(fields, FieldError{Field: "firstName", Message: "is too long"})
	}

	if strings.TrimSpace(req.LastName) == "" {
		fields = append(fields, FieldError{Field: "lastName", Message: "is required"})
	} else if len(req.LastName) > domain.MaxNameLength {
		fields = append(fields, FieldError{Field: "lastName", Message: "is too long"})
	}

	if strings.TrimSpace(req.Email) == "" {
		fields = append(fields, FieldError{Field: "email", Message: "is required"})
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		fields = append(fields, FieldError{Field: "email", Message: "is not a valid email address"})
	}

	if strings.TrimSpace(req.Subject) == "" {
		fields = append(fields, FieldError{Field: "subject", Message: "is required"})
	} else if len(req.Subject) > domain.MaxSubjectLength {
		fields = append(fields, FieldError{Field: "subject", Message: "is too long"})
	}

	if strings.TrimSpace(req.Message) == "" {
		fields = append(fields, FieldError{Field: "message", Message: "is required"})
	} else if len(req.Message) > domain.MaxMessageLength {
		fields = append(fields, FieldError{Field: "message", Message: "is too long"})
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
