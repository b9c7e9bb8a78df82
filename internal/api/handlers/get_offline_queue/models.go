package get_offline_queue

import (
	"time"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

// QueueEntryResponse краткая информация о записи без тела (фото панели может быть большим)
type QueueEntryResponse struct {
	ID               int64           `json:"id"`
	FormID           string          `json:"formId"`
	Nome             string          `json:"nome"`
	DataReserva      string          `json:"dataReserva"`
	HorarioDesejado  string          `json:"horarioDesejado"`
	LocalDesejado    domain.Location `json:"localDesejado"`
	OfflineTimestamp string          `json:"offlineTimestamp"`
}

// QueueResponse HTTP response model
type QueueResponse struct {
	Count   int                  `json:"count"`
	Entries []QueueEntryResponse `json:"entries"`
}

// FromEntries конвертирует записи очереди в HTTP response
func FromEntries(entries []domain.OfflineReservationEntry) *QueueResponse {
	resp := &QueueResponse{
		Count:   len(entries),
		Entries: make([]QueueEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, QueueEntryResponse{
			ID:               e.ID,
			FormID:           e.FormID,
			Nome:             e.Payload.DadosPessoais.Nome,
			DataReserva:      e.Payload.DetalhesReserva.DataReserva,
			HorarioDesejado:  e.Payload.DetalhesReserva.HorarioDesejado,
			LocalDesejado:    e.Payload.DetalhesReserva.LocalDesejado,
			OfflineTimestamp: e.OfflineTimestamp.Format(time.RFC3339),
		})
	}
	return resp
}
