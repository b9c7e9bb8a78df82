package check_spots

import "github.com/m04kA/Mercearia-ReservationService/internal/domain"

// Request модель запроса
// Пустая дата или зона означает, что выбор еще не завершен
type Request struct {
	Date     string
	Location domain.Location
}

// Response модель ответа
type Response struct {
	Spots domain.SpotAvailability
}
