package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/acarlier/MT-BookingService/internal/api/handlers"
	getAvailability "github.com/acarlier/MT-BookingService/internal/usecase/get_availability"
)

const msgInvalidDate = "invalid date, expected YYYY-MM-DD"

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/appointments/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /appointments/availability/{date} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /appointments/availability/{date} - Failed to get availability: date=%s, error=%v",
				date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
