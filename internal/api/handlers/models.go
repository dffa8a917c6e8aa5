package handlers

import (
	"time"

	"github.com/acarlier/MT-BookingService/internal/domain"
)

// AppointmentResponse HTTP модель записи на приём
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

// ServiceResponse HTTP модель услуги каталога
type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// ContactMessageResponse HTTP модель сообщения контактной формы
type ContactMessageResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// FromDomainAppointment конвертирует domain запись в HTTP модель
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        appt.ID,
		ServiceID: appt.ServiceID,
		FirstName: appt.FirstName,
		LastName:  appt.LastName,
		Email:     appt.Email,
		Phone:     appt.Phone,
		Date:      appt.Date,
		Time:      appt.Time.String(),
		Comments:  appt.Comments,
		Status:    string(appt.Status),
		CreatedAt: appt.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList конвертирует список domain записей
func FromDomainAppointmentList(appointments []*domain.Appointment) []*AppointmentResponse {
	result := make([]*AppointmentResponse, len(appointments))
	for i, appt := range appointments {
		result[i] = FromDomainAppointment(appt)
	}
	return result
}

// FromDomainService конвертирует domain услугу в HTTP модель
func FromDomainService(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		Duration:    svc.DurationMinutes,
		Price:       svc.Price,
		Image:       svc.Image,
		Category:    string(svc.Category),
	}
}

// FromDomainServiceList конвертирует список domain услуг
func FromDomainServiceList(services []*domain.Service) []*ServiceResponse {
	result := make([]*ServiceResponse, len(services))
	for i, svc := range services {
		result[i] = FromDomainService(svc)
	}
	return result
}

// FromDomainContactMessage конвертирует domain сообщение в HTTP модель
func FromDomainContactMessage(msg *domain.ContactMessage) *ContactMessageResponse {
	return &ContactMessageResponse{
		ID:        msg.ID,
		FirstName: msg.FirstName,
		LastName:  msg.LastName,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainContactMessageList конвертирует список domain сообщений
func FromDomainContactMessageList(messages []*domain.ContactMessage) []*ContactMessageResponse {
	result := make([]*ContactMessageResponse, len(messages))
	for i, msg := range messages {
		result[i] = FromDomainContactMessage(msg)
	}
	return result
}
