package domain

import "github.com/acarlier/MT-BookingService/pkg/types"

// dailySlots is the fixed slot catalog: the bookable start times of any
// calendar day, in ascending chronological order. Every day offers the
// same slots.
var dailySlots = []types.TimeString{
	"09:00",
	"10:30",
	"12:00",
	"13:30",
	"15:00",
	"16:30",
	"18:00",
}

// SlotsForDay returns the slot catalog. The returned slice is a copy, so
// callers may not mutate the catalog.
func SlotsForDay() []types.TimeString {
	slots := make([]types.TimeString, len(dailySlots))
	copy(slots, dailySlots)
	return slots
}

// IsBookableSlot reports whether t is a member of the slot catalog
func IsBookableSlot(t types.TimeString) bool {
	for _, slot := range dailySlots {
		if slot == t {
			return true
		}
	}
	return false
}
