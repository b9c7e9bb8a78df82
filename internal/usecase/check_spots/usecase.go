package check_spots

import (
	"context"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/internal/integrations/webhooks"
)

// UseCase use case для проверки наличия мест
type UseCase struct {
	client SpotsClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client SpotsClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute проверяет наличие мест для даты и зоны
// Без даты или зоны внешний сервис не вызывается, результат Unknown с пустым сообщением
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date == "" || req.Location == "" {
		return &Response{Spots: domain.UnknownSpotAvailability()}, nil
	}

	spots, err := uc.client.CheckSpotAvailability(ctx, req.Date, req.Location)
	if err != nil {
		uc.logger.Error("CheckSpots: date=%s, location=%s: %v", req.Date, req.Location, err)

		result := domain.UnknownSpotAvailability()
		result.Message = domain.MsgSpotsCheckFailed
		result.Error = webhooks.ServiceMessage(err)
		if result.Error == "" {
			result.Error = err.Error()
		}
		return &Response{Spots: result}, nil
	}

	uc.logger.Info("CheckSpots: date=%s, location=%s, available=%s", req.Date, req.Location, spots.Available)

	return &Response{Spots: *spots}, nil
}
