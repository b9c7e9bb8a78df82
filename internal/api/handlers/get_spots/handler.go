package get_spots

import (
	"net/http"

	"github.com/m04kA/Mercearia-ReservationService/internal/api/handlers"
	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	checkSpots "github.com/m04kA/Mercearia-ReservationService/internal/usecase/check_spots"
)

const msgInvalidLocation = "Local desejado inválido"

type Handler struct {
	useCase CheckSpotsUseCase
	logger  Logger
}

func NewHandler(useCase CheckSpotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spots?date=YYYY-MM-DD&location=<local>
// Без даты или зоны возвращается "неизвестно"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	location := domain.Location(query.Get("location"))
	if location != "" && !location.IsValid() {
		h.logger.Warn("GET /spots - Invalid location: %q", location)
		handlers.RespondBadRequest(w, msgInvalidLocation)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkSpots.Request{Date: query.Get("date"), Location: location})
	if err != nil {
		h.logger.Error("GET /spots - Failed to check spots: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Spots)
}
