package get_spots

import (
	"context"

	checkSpots "github.com/m04kA/Mercearia-ReservationService/internal/usecase/check_spots"
)

type CheckSpotsUseCase interface {
	Execute(ctx context.Context, req *checkSpots.Request) (*checkSpots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
