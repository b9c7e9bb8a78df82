package get_panel_eligibility

import (
	"context"

	evaluatePanel "github.com/m04kA/Mercearia-ReservationService/internal/usecase/evaluate_panel"
)

type EvaluatePanelUseCase interface {
	Execute(ctx context.Context, req *evaluatePanel.Request) (*evaluatePanel.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
