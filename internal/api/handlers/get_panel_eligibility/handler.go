package get_panel_eligibility

import (
	"errors"
	"net/http"

	"github.com/m04kA/Mercearia-ReservationService/internal/api/handlers"
	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	evaluatePanel "github.com/m04kA/Mercearia-ReservationService/internal/usecase/evaluate_panel"
)

const (
	msgInvalidDate      = "Data inválida, use o formato AAAA-MM-DD"
	msgInvalidPartySize = "Quantidade de pessoas inválida"
)

type Handler struct {
	useCase EvaluatePanelUseCase
	logger  Logger
}

func NewHandler(useCase EvaluatePanelUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/panel-eligibility?date=YYYY-MM-DD&partySize=N&location=<local>
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	partySize, err := handlers.QueryInt(r, "partySize", 0)
	if err != nil || partySize < 0 {
		h.logger.Warn("GET /panel-eligibility - Invalid party size: %q", query.Get("partySize"))
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	req := &evaluatePanel.Request{
		Date:      query.Get("date"),
		PartySize: partySize,
		Location:  domain.Location(query.Get("location")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, evaluatePanel.ErrInvalidInput):
			h.logger.Warn("GET /panel-eligibility - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /panel-eligibility - Failed to evaluate: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Eligibility)
}
