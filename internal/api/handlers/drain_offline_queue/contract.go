package drain_offline_queue

import (
	"context"

	submitReservation "github.com/m04kA/Mercearia-ReservationService/internal/usecase/submit_reservation"
)

type QueueDrainer interface {
	Drain(ctx context.Context) (*submitReservation.DrainReport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
