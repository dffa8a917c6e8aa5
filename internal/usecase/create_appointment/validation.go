package create_appointment

import (
	"net/mail"
	"strings"
	"time"

	"github.com/acarlier/MT-BookingService/internal/domain"
)

// validateRequest валидирует структурную форму запроса.
// Возвращает *ValidationError со списком невалидных полей или nil.
func validateRequest(req *Request) *ValidationError {
	var fields []FieldError

	if strings.TrimSpace(req.ServiceID) == "" {
		fields = append(fields, FieldError{Field: "serviceId", Message: "is required"})
	}

	fields = append(fields, validateName("firstName", req.FirstName)...)
	fields = append(fields, validateName("lastName", req.LastName)...)

	if strings.TrimSpace(req.Email) == "" {
		fields = append(fields, FieldError{Field: "email", Message: "is required"})
	} else if len(req.Email) > domain.MaxEmailLength {
		fields = append(fields, FieldError{Field: "email", Message: "is too long"})
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		fields = append(fields, FieldError{Field: "email", Message: "is not a valid email address"})
	}

	if strings.TrimSpace(req.Phone) == "" {
		fields = append(fields, FieldError{Field: "phone", Message: "is required"})
	} else if len(req.Phone) > domain.MaxPhoneLength {
		fields = append(fields, FieldError{Field: "phone", Message: "is too long"})
	}

	if req.Date == "" {
		fields = append(fields, FieldError{Field: "date", Message: "is required"})
	} else if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		fields = append(fields, FieldError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}

	if req.Time.IsZero() {
		fields = append(fields, FieldError{Field: "time", Message: "is required"})
	} else if err := req.Time.Validate(); err != nil {
		fields = append(fields, FieldError{Field: "time", Message: "must be a time in HH:MM format"})
	} else if !domain.IsBookableSlot(req.Time) {
		fields = append(fields, FieldError{Field: "time", Message: "is not a bookable time slot"})
	}

	if req.Comments != nil && len(*req.Comments) > domain.MaxCommentsLength {
		fields = append(fields, FieldError{Field: "comments", Message: "is too long"})
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func validateName(field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		return []FieldError{{Field: field, Message: "is required"}}
	}
	if len(value) > domain.MaxNameLength {
		return []FieldError{{Field: field, Message: "is too long"}}
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня.
// Сравниваются только даты, время суток обнуляется.
func isDateInPast(date time.Time, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
