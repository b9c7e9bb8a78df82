package evaluate_panel

import (
	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/pkg/types"
)

// Evaluator правила доступности панели
type Evaluator struct {
	MinPartySize int
}

// NewEvaluator создает evaluator с минимальным количеством гостей по умолчанию
func NewEvaluator() Evaluator {
	return Evaluator{MinPartySize: domain.PanelMinPartySize}
}

// Evaluate проверяет правила с минимальным количеством гостей по умолчанию
func Evaluate(partySize int, location domain.Location, remote domain.PanelSlots) domain.PanelEligibility {
	return NewEvaluator().Evaluate(partySize, location, remote)
}

// Evaluate панель доступна, только если внешний сервис сообщил о свободных панелях,
// гостей не меньше минимума и зона входит в список разрешенных
// Сообщение: сначала про количество гостей, затем про зону, иначе сообщение сервиса
func (e Evaluator) Evaluate(partySize int, location domain.Location, remote domain.PanelSlots) domain.PanelEligibility {
	partySizeOK := partySize >= e.MinPartySize
	locationOK := location.AllowsPanel()

	result := domain.PanelEligibility{
		Available: types.TristateOf(remote.Available && partySizeOK && locationOK),
		SlotsUsed: remote.Count,
	}

	switch {
	case !partySizeOK:
		result.Message = domain.MsgPanelPartySizeTooLow
	case !locationOK:
		result.Message = domain.MsgPanelLocationInvalid
	default:
		result.Message = remote.Message
	}

	return result
}
