package delete_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Mercearia-ReservationService/internal/api/handlers"
	"github.com/m04kA/Mercearia-ReservationService/internal/infra/storage/drafts"
)

const msgDraftNotFound = "Rascunho não encontrado"

type Handler struct {
	repo   DraftDeleter
	logger Logger
}

func NewHandler(repo DraftDeleter, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle DELETE /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	if err := h.repo.Delete(r.Context(), draftID); err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			handlers.RespondNotFound(w, msgDraftNotFound)
		default:
			h.logger.Error("DELETE /drafts/{id} - Failed to delete draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
