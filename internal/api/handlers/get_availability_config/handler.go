package get_availability_config

import (
	"net/http"

	"github.com/m04kA/Mercearia-ReservationService/internal/api/handlers"
	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

// ConfigResponse конфигурация и признак того, что использованы значения по умолчанию
type ConfigResponse struct {
	domain.AvailabilityConfig
	Fallback bool `json:"fallback"`
}

type Handler struct {
	refresher ConfigRefresher
	logger    Logger
}

func NewHandler(refresher ConfigRefresher, logger Logger) *Handler {
	return &Handler{
		refresher: refresher,
		logger:    logger,
	}
}

// Handle GET /api/v1/availability/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	config, fallback := h.refresher.Refresh(r.Context())
	if fallback {
		h.logger.Warn("GET /availability/config - Serving default config")
	}
	handlers.RespondJSON(w, http.StatusOK, ConfigResponse{AvailabilityConfig: config, Fallback: fallback})
}
