package session

import (
	"errors"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/internal/validation"
	"github.com/m04kA/Mercearia-ReservationService/pkg/types"
)

// Rules настраиваемые параметры правил перехода
type Rules struct {
	// PanelMinPartySize минимум гостей для панели; 0 - значение по умолчанию
	PanelMinPartySize int
}

func (r Rules) panelMinPartySize() int {
	if r.PanelMinPartySize <= 0 {
		return domain.PanelMinPartySize
	}
	return r.PanelMinPartySize
}

// Evaluate возвращает причины, по которым шаг step нельзя пройти
// Пустой результат означает, что переход разрешен. Шаг резюме проверяет оба шага
func Evaluate(state State, step int, validator FieldValidator, rules Rules) map[string]string {
	reasons := make(map[string]string)

	switch step {
	case domain.StepPersonalData:
		addFieldErrors(reasons, validator.ValidateStep(state.Draft, domain.StepPersonalData))
	case domain.StepReservationDetails:
		addFieldErrors(reasons, validator.ValidateStep(state.Draft, domain.StepReservationDetails))
		addDerivedReasons(reasons, state, rules)
	default:
		addFieldErrors(reasons, validator.ValidateStep(state.Draft, domain.StepPersonalData))
		addFieldErrors(reasons, validator.ValidateStep(state.Draft, domain.StepReservationDetails))
		addDerivedReasons(reasons, state, rules)
	}

	return reasons
}

// AvailabilityBlockers причины отказа по результатам проверок даты, мест и панели
// Поля формы не проверяются
func AvailabilityBlockers(state State, rules Rules) map[string]string {
	reasons := make(map[string]string)
	addDerivedReasons(reasons, state, rules)
	return reasons
}

// addDerivedReasons правила, зависящие от результатов проверок доступности
func addDerivedReasons(reasons map[string]string, state State, rules Rules) {
	draft := state.Draft
	if draft.DataReserva == "" {
		return
	}

	// 1. Дата
	availability := state.Availability
	if availability == nil || availability.Date != draft.DataReserva {
		setReason(reasons, "dataReserva", domain.MsgDateNotChecked)
		return
	}
	if !availability.Bookable {
		setReason(reasons, "dataReserva", availability.Message)
		return
	}

	// 2. Время
	if draft.HorarioDesejado != "" && !availability.HasTimeSlot(draft.HorarioDesejado) {
		setReason(reasons, "horarioDesejado", domain.MsgTimeUnavailable)
	}

	// 3. Места: блокирует и "нет", и "неизвестно"
	if draft.LocalDesejado != "" {
		switch state.Spots.Available {
		case types.Yes:
		case types.No:
			setReason(reasons, "localDesejado", firstNonEmpty(state.Spots.Message, domain.MsgSpotsUnavailable))
		default:
			if state.Spots.Error != "" {
				setReason(reasons, "localDesejado", firstNonEmpty(state.Spots.Message, domain.MsgSpotsCheckFailed))
			} else {
				setReason(reasons, "localDesejado", domain.MsgSpotsPending)
			}
		}
	}

	// 4. Панель: блокирует только явное "нет" и локальные правила
	if draft.WantsPanel() {
		switch {
		case draft.QuantidadePessoas < rules.panelMinPartySize():
			setReason(reasons, "reservaPainel", domain.MsgPanelPartySizeTooLow)
		case !draft.LocalDesejado.AllowsPanel():
			setReason(reasons, "reservaPainel", domain.MsgPanelLocationInvalid)
		case state.Panel.Available == types.No:
			setReason(reasons, "reservaPainel", firstNonEmpty(state.Panel.Message, domain.MsgPanelCheckFailed))
		}
	}
}

func addFieldErrors(reasons map[string]string, err error) {
	if err == nil {
		return
	}
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		for field, msg := range validationErr.FieldErrors {
			setReason(reasons, field, msg)
		}
		return
	}
	setReason(reasons, "_", err.Error())
}

func setReason(reasons map[string]string, field, message string) {
	if _, exists := reasons[field]; !exists {
		reasons[field] = message
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
