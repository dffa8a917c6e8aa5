package get_availability

import (
	"github.com/acarlier/MT-BookingService/internal/domain"
	"github.com/acarlier/MT-BookingService/pkg/types"
)

// freeSlots возвращает слоты каталога, не занятые подтвержденными записями.
// Порядок каталога (хронологический) сохраняется; отмененные записи слот
// не занимают.
func freeSlots(appointments []*domain.Appointment) []types.TimeString {
	booked := make(map[types.TimeString]struct{}, len(appointments))
	for _, appt := range appointments {
		if appt.IsConfirmed() {
			booked[appt.Time] = struct{}{}
		}
	}

	available := make([]types.TimeString, 0)
	for _, slot := range domain.SlotsForDay() {
		if _, taken := booked[slot]; !taken {
			available = append(available, slot)
		}
	}

	return available
}
