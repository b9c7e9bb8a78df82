package get_offline_queue

import (
	"net/http"

	"github.com/m04kA/Mercearia-ReservationService/internal/api/handlers"
)

const msgQueueUnavailable = "Fila local indisponível"

type Handler struct {
	lister PendingLister
	logger Logger
}

func NewHandler(lister PendingLister, logger Logger) *Handler {
	return &Handler{
		lister: lister,
		logger: logger,
	}
}

// Handle GET /api/v1/offline-queue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries, err := h.lister.Pending(r.Context())
	if err != nil {
		h.logger.Error("GET /offline-queue - Failed to list queue: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgQueueUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromEntries(entries))
}
