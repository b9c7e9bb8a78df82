package evaluate_panel

import "github.com/m04kA/Mercearia-ReservationService/internal/domain"

// Request модель запроса на проверку панели
type Request struct {
	Date      string // YYYY-MM-DD
	PartySize int
	Location  domain.Location
}

// Response модель ответа
type Response struct {
	Eligibility domain.PanelEligibility
}
