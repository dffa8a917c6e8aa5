package get_availability

import (
	getAvailability "github.com/acarlier/MT-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	AvailableSlots []string `json:"availableSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]string, len(resp.AvailableSlots))
	for i, slot := range resp.AvailableSlots {
		slots[i] = slot.String()
	}

	return &AvailabilityResponse{AvailableSlots: slots}
}
