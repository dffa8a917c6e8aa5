package list_appointments

import (
	"net/http"

	"github.com/acarlier/MT-BookingService/internal/api/handlers"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainAppointmentList(appointments))
}
