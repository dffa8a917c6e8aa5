package contact

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("contact.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("contact.service: internal error")
)

// FieldError описывает ошибку валидации одного поля
type FieldError struct {
	Field   string
	Message string
}

// ValidationError ошибка структурной валидации сообщения.
// Оборачивает ErrInvalidInput и несет детали по полям.
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
