package health

import (
	"context"
	"net/http"

	"github.com/m04kA/Mercearia-ReservationService/internal/api/handlers"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type OnlineChecker interface {
	IsOnline() bool
}

// Response состояние сервиса
type Response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Online   bool   `json:"online"`
}

type Handler struct {
	db    Pinger
	probe OnlineChecker
}

// NewHandler probe может быть nil, тогда сервис считается онлайн
func NewHandler(db Pinger, probe OnlineChecker) *Handler {
	return &Handler{db: db, probe: probe}
}

// Handle GET /healthz
// 503 только при недоступной базе: без сети бронирования уходят в офлайн очередь
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := Response{Status: "ok", Database: "ok", Online: true}
	if h.probe != nil {
		resp.Online = h.probe.IsOnline()
	}

	status := http.StatusOK
	if err := h.db.PingContext(r.Context()); err != nil {
		resp.Status = "degraded"
		resp.Database = err.Error()
		status = http.StatusServiceUnavailable
	}

	handlers.RespondJSON(w, status, resp)
}
