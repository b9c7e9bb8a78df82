package save_draft

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Mercearia-ReservationService/internal/api/handlers"
	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido"
	msgInvalidStep        = "Etapa inválida"
)

type Handler struct {
	repo   DraftSaver
	logger Logger
}

func NewHandler(repo DraftSaver, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle PUT /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var req SaveDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.CurrentStep < domain.StepPersonalData || req.CurrentStep > domain.StepSummary {
		handlers.RespondBadRequest(w, msgInvalidStep)
		return
	}

	snapshot := req.ToSnapshot(draftID, time.Now())
	if err := h.repo.Save(r.Context(), snapshot); err != nil {
		h.logger.Error("PUT /drafts/{id} - Failed to save draft: draft_id=%s, error=%v", draftID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snapshot)
}
