package drain_offline_queue

import (
	"net/http"

	"github.com/m04kA/Mercearia-ReservationService/internal/api/handlers"
)

const msgQueueUnavailable = "Fila local indisponível"

type Handler struct {
	drainer QueueDrainer
	logger  Logger
}

func NewHandler(drainer QueueDrainer, logger Logger) *Handler {
	return &Handler{
		drainer: drainer,
		logger:  logger,
	}
}

// Handle POST /api/v1/offline-queue/drain
// 202, если другой проход уже выполняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	report, err := h.drainer.Drain(r.Context())
	if err != nil {
		h.logger.Error("POST /offline-queue/drain - Drain failed: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgQueueUnavailable)
		return
	}

	status := http.StatusOK
	if report.Skipped {
		status = http.StatusAccepted
	}

	h.logger.Info("POST /offline-queue/drain - total=%d, delivered=%d, remaining=%d, skipped=%t",
		report.Total, len(report.Delivered), len(report.Remaining), report.Skipped)
	handlers.RespondJSON(w, status, report)
}
