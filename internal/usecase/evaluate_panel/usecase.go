package evaluate_panel

import (
	"context"
	"fmt"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/internal/integrations/webhooks"
)

// UseCase use case для проверки доступности панели
type UseCase struct {
	client    PanelClient
	evaluator Evaluator
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client PanelClient, evaluator Evaluator, logger Logger) *UseCase {
	return &UseCase{
		client:    client,
		evaluator: evaluator,
		logger:    logger,
	}
}

// Execute запрашивает занятость панелей и применяет правила
// Ошибка внешнего сервиса не превращается в "доступно": результат Unknown с текстом ошибки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	if _, err := domain.ParseDate(req.Date, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Запрос во внешний сервис
	slots, err := uc.client.CheckPanelAvailability(ctx, req.Date)
	if err != nil {
		uc.logger.Error("EvaluatePanel: date=%s: %v", req.Date, err)

		eligibility := domain.UnknownPanelEligibility()
		eligibility.Message = domain.MsgPanelCheckFailed
		eligibility.Error = webhooks.ServiceMessage(err)
		if eligibility.Error == "" {
			eligibility.Error = err.Error()
		}
		return &Response{Eligibility: eligibility}, nil
	}

	// 3. Правила
	eligibility := uc.evaluator.Evaluate(req.PartySize, req.Location, *slots)

	uc.logger.Info("EvaluatePanel: date=%s, party=%d, location=%s, available=%s, used=%d",
		req.Date, req.PartySize, req.Location, eligibility.Available, eligibility.SlotsUsed)

	return &Response{Eligibility: eligibility}, nil
}
