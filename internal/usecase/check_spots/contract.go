package check_spots

import (
	"context"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

// SpotsClient клиент проверки мест
type SpotsClient interface {
	CheckSpotAvailability(ctx context.Context, date string, location domain.Location) (*domain.SpotAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
