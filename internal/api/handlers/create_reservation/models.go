package create_reservation

import (
	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

// CreateReservationRequest HTTP request model
// FormID можно передать при повторной отправке той же формы, иначе генерируется
type CreateReservationRequest struct {
	FormID   string                  `json:"formId,omitempty"`
	FormData domain.ReservationDraft `json:"formData"`
}
