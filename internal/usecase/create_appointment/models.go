package create_appointment

import (
	"time"

	"github.com/acarlier/MT-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ServiceID string           // ID услуги из каталога
	FirstName string           // Имя клиента
	LastName  string           // Фамилия клиента
	Email     string           // Email клиента
	Phone     string           // Телефон клиента
	Date      string           // Дата записи (YYYY-MM-DD)
	Time      types.TimeString // Время из каталога слотов (например, "10:30")
	Comments  *string          // Комментарий (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        string
	ServiceID string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Date      string
	Time      types.TimeString
	Comments  *string
	Status    string
	CreatedAt time.Time
}
