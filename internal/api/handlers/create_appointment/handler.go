package create_appointment

import (
	"errors"
	"net/http"

	"github.com/acarlier/MT-BookingService/internal/api/handlers"
	createAppointment "github.com/acarlier/MT-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidData        = "invalid appointment data"
	msgSlotNotAvailable   = "slot no longer available"
	msgServiceNotFound    = "unknown service"
	msgDateInPast         = "date is in the past"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var verr *createAppointment.ValidationError

		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /appointments - Validation failed: %v", verr)
			handlers.RespondValidationError(w, msgInvalidData, toFieldErrors(verr.Fields))

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondValidationError(w, msgInvalidData, []handlers.FieldError{
				{Field: "serviceId", Message: msgServiceNotFound},
			})

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: date=%s", req.Date)
			handlers.RespondValidationError(w, msgInvalidData, []handlers.FieldError{
				{Field: "date", Message: msgDateInPast},
			})

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, date=%s, time=%s",
		result.ID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func toFieldErrors(fields []createAppointment.FieldError) []handlers.FieldError {
	result := make([]handlers.FieldError, len(fields))
	for i, f := range fields {
		result[i] = handlers.FieldError{Field: f.Field, Message: f.Message}
	}
	return result
}
