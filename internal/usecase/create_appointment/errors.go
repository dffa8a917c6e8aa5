package create_appointment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrServiceNotFound возвращается, когда указанная услуга не существует
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrDateInPast возвращается при попытке записаться на прошедшую дату
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrSlotNotAvailable возвращается, когда слот уже занят на момент коммита
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// FieldError описывает ошибку валидации одного поля запроса
type FieldError struct {
	Field   string
	Message string
}

// ValidationError ошибка структурной валидации запроса.
// Оборачивает ErrInvalidInput и несет детали по полям, чтобы
// HTTP слой мог вернуть их клиенту.
type ValidationError struct {
	Fields []FieldError
}

// Error возвращает текст ошибки со списком невалидных полей
func (e *ValidationError) Error() string {
	fields := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		fields[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return fmt.Sprintf("%v (%s)", ErrInvalidInput, strings.Join(fields, "; "))
}

// Unwrap позволяет errors.Is(err, ErrInvalidInput)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
