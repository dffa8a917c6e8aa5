package create_appointment

import (
	"time"

	createAppointment "github.com/acarlier/MT-BookingService/internal/usecase/create_appointment"
	"github.com/acarlier/MT-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID string  `json:"serviceId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Date      string  `json:"date"` // "2025-03-10"
	Time      string  `json:"time"` // "10:30"
	Comments  *string `json:"comments,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        string  `json:"id"`
	ServiceID string  `json:"serviceId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Comments  *string `json:"comments,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Формат времени здесь не проверяется - структурная валидация
// целиком живет в use case.
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		ServiceID: r.ServiceID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Date:      r.Date,
		Time:      types.TimeString(r.Time),
		Comments:  r.Comments,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID,
		ServiceID: resp.ServiceID,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Email:     resp.Email,
		Phone:     resp.Phone,
		Date:      resp.Date,
		Time:      resp.Time.String(),
		Comments:  resp.Comments,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
