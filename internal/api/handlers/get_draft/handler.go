package get_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Mercearia-ReservationService/internal/api/handlers"
	"github.com/m04kA/Mercearia-ReservationService/internal/infra/storage/drafts"
)

const msgDraftNotFound = "Rascunho não encontrado"

type Handler struct {
	repo   DraftGetter
	logger Logger
}

func NewHandler(repo DraftGetter, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	snapshot, err := h.repo.Get(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			handlers.RespondNotFound(w, msgDraftNotFound)
		default:
			h.logger.Error("GET /drafts/{id} - Failed to get draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snapshot)
}
