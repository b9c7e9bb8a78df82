package evaluate_panel

import (
	"context"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

// PanelClient клиент проверки занятости панелей
type PanelClient interface {
	CheckPanelAvailability(ctx context.Context, date string) (*domain.PanelSlots, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
