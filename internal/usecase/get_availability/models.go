package get_availability

import "github.com/acarlier/MT-BookingService/pkg/types"

// Request модель запроса на получение доступных слотов
type Request struct {
	Date string // Дата в формате YYYY-MM-DD
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date           string             // Дата, на которую запрашивались слоты
	AvailableSlots []types.TimeString // Свободные слоты в хронологическом порядке
}
