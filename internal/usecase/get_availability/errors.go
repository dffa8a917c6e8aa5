package get_availability

import "errors"

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("get_availability: invalid date, expected YYYY-MM-DD")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
