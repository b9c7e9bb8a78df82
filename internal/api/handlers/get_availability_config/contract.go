package get_availability_config

import (
	"context"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

type ConfigRefresher interface {
	Refresh(ctx context.Context) (domain.AvailabilityConfig, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
