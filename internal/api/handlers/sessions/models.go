package sessions

import (
	"github.com/m04kA/Mercearia-ReservationService/internal/session"
)

// OpenSessionRequest HTTP request model; пустой DraftID открывает новую форму
type OpenSessionRequest struct {
	DraftID string `json:"draftId,omitempty"`
}

// StepRequest действие навигации: next, prev или goto (со Step)
type StepRequest struct {
	Action string `json:"action"`
	Step   int    `json:"step,omitempty"`
}

// SessionResponse состояние формы и причины, по которым текущий шаг нельзя пройти
type SessionResponse struct {
	ID         string            `json:"id"`
	State      session.State     `json:"state"`
	CanAdvance bool              `json:"canAdvance"`
	Blockers   map[string]string `json:"blockers"`
}

// FromSession конвертирует сессию в HTTP response
func FromSession(s *session.Session) *SessionResponse {
	blockers := s.CanAdvance()
	return &SessionResponse{
		ID:         s.ID(),
		State:      s.State(),
		CanAdvance: len(blockers) == 0,
		Blockers:   blockers,
	}
}
