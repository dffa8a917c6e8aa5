package domain

import (
	"time"

	"github.com/acarlier/MT-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus validates a raw status string against the closed
// set of appointment statuses
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusConfirmed, StatusCancelled:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}

// Appointment represents a booked time slot for a service
type Appointment struct {
	ID        string
	ServiceID string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Date      string // calendar date, YYYY-MM-DD
	Time      types.TimeString
	Comments  *string
	Status    AppointmentStatus
	CreatedAt time.Time
}

// IsConfirmed returns true if the appointment occupies its slot
func (a *Appointment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment can transition to cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}
