package domain

import "github.com/m04kA/Mercearia-ReservationService/pkg/types"

// PanelSlots ответ внешнего сервиса о занятости панелей на дату
type PanelSlots struct {
	Available bool   `json:"available"`
	Count     int    `json:"count"`
	Message   string `json:"message"`
}

// PanelEligibility итоговая доступность панели для текущих параметров бронирования
// Available = Unknown, если проверка не выполнялась или завершилась ошибкой
type PanelEligibility struct {
	Available types.Tristate `json:"available"`
	SlotsUsed int            `json:"slotsUsed"`
	Message   string         `json:"message"`
	Error     string         `json:"error,omitempty"`
}

// SpotAvailability наличие мест для пары (дата, зона)
type SpotAvailability struct {
	Available types.Tristate `json:"available"`
	Message   string         `json:"message"`
	Error     string         `json:"error,omitempty"`
}

// UnknownSpotAvailability состояние "ещё не проверено"
func UnknownSpotAvailability() SpotAvailability {
	return SpotAvailability{Available: types.Unknown}
}

// UnknownPanelEligibility состояние "ещё не проверено"
func UnknownPanelEligibility() PanelEligibility {
	return PanelEligibility{Available: types.Unknown}
}
