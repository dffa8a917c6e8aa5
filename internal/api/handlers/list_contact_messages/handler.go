package list_contact_messages

import (
	"net/http"

	"github.com/acarlier/MT-BookingService/internal/api/handlers"
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

// Handle GET /api/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /contact - Failed to list contact messages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainContactMessageList(messages))
}
