package resolve_availability

import "github.com/m04kA/Mercearia-ReservationService/internal/domain"

// Request модель запроса на проверку даты
type Request struct {
	Date string // YYYY-MM-DD
}

// Response модель ответа
type Response struct {
	Result   domain.AvailabilityResult
	Config   domain.AvailabilityConfig // Конфигурация, по которой считался результат
	Fallback bool                      // true, если внешний сервис недоступен и использованы значения по умолчанию
}
