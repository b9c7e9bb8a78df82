package save_draft

import (
	"time"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

// SaveDraftRequest HTTP request model; сохраняются только данные формы и текущий шаг
type SaveDraftRequest struct {
	FormData    domain.ReservationDraft `json:"formData"`
	CurrentStep int                     `json:"currentStep"`
}

// ToSnapshot конвертирует запрос в модель хранилища
func (r *SaveDraftRequest) ToSnapshot(id string, now time.Time) domain.DraftSnapshot {
	return domain.DraftSnapshot{
		ID:          id,
		FormData:    r.FormData,
		CurrentStep: r.CurrentStep,
		UpdatedAt:   now,
	}
}
