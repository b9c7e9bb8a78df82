package get_availability

import (
	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	resolveAvailability "github.com/m04kA/Mercearia-ReservationService/internal/usecase/resolve_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date          string   `json:"date"`
	DateBR        string   `json:"dateBR"`
	Bookable      bool     `json:"bookable"`
	TimeSlots     []string `json:"timeSlots"`
	Message       string   `json:"message"`
	ConfigMessage string   `json:"configMessage,omitempty"`
	Fallback      bool     `json:"fallback"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveAvailability.Response) *AvailabilityResponse {
	slots := resp.Result.TimeSlots
	if slots == nil {
		slots = []string{}
	}
	return &AvailabilityResponse{
		Date:          resp.Result.Date,
		DateBR:        domain.FormatDateBR(resp.Result.Date),
		Bookable:      resp.Result.Bookable,
		TimeSlots:     slots,
		Message:       resp.Result.Message,
		ConfigMessage: resp.Result.ConfigMessage,
		Fallback:      resp.Fallback,
	}
}
