package create_contact_message

import (
	"errors"
	"net/http"

	"github.com/acarlier/MT-BookingService/internal/api/handlers"
	"github.com/acarlier/MT-BookingService/internal/service/contact"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidData        = "invalid contact message data"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateContactMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		var verr *contact.ValidationError

		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /contact - Validation failed: %v", verr)
			handlers.RespondValidationError(w, msgInvalidData, toFieldErrors(verr.Fields))

		case errors.Is(err, contact.ErrInvalidInput):
			h.logger.Warn("POST /contact - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /contact - Failed to create message: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact - Contact message created: id=%s", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainContactMessage(created))
}

func toFieldErrors(fields []contact.FieldError) []handlers.FieldError {
	result := make([]handlers.FieldError, len(fields))
	for i, f := range fields {
		result[i] = handlers.FieldError{Field: f.Field, Message: f.Message}
	}
	return result
}
