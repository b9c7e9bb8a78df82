package get_offline_queue

import (
	"context"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

type PendingLister interface {
	Pending(ctx context.Context) ([]domain.OfflineReservationEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
