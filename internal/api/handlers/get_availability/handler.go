package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mercearia-ReservationService/internal/api/handlers"
	resolveAvailability "github.com/m04kA/Mercearia-ReservationService/internal/usecase/resolve_availability"
)

const (
	msgMissingDate = "A data é obrigatória"
	msgInvalidDate = "Data inválida, use o formato AAAA-MM-DD"
)

type Handler struct {
	useCase ResolveAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ResolveAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolveAvailability.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, resolveAvailability.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /availability - Failed to resolve: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
