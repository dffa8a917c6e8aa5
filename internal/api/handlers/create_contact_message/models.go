package create_contact_message

import "github.com/acarlier/MT-BookingService/internal/service/contact"

// CreateContactMessageRequest HTTP request model
type CreateContactMessageRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateContactMessageRequest) ToServiceRequest() *contact.CreateMessageRequest {
	return &contact.CreateMessageRequest{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Subject:   r.Subject,
		Message:   r.Message,
	}
}
