package sessions

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Mercearia-ReservationService/internal/api/handlers"
	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/internal/session"
	submitReservation "github.com/m04kA/Mercearia-ReservationService/internal/usecase/submit_reservation"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido"
	msgSessionNotFound    = "Sessão não encontrada"
	msgSessionClosed      = "Sessão encerrada"
	msgStepBlocked        = "Verifique os campos destacados"
	msgInvalidAction      = "Ação inválida"
	msgSubmitInProgress   = "Sua reserva já está sendo enviada"
	msgQueueUnavailable   = "Não foi possível salvar sua reserva localmente. Tente novamente."

	maxPatchBytes = 8 << 20
)

// Handler обработчики серверных сессий формы
type Handler struct {
	manager SessionManager
	logger  Logger
}

func NewHandler(manager SessionManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// Open POST /api/v1/sessions
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	var req OpenSessionRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
			h.logger.Warn("POST /sessions - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	s := h.manager.Open(r.Context(), req.DraftID)

	h.logger.Info("POST /sessions - Session opened: id=%s", s.ID())
	handlers.RespondJSON(w, http.StatusCreated, FromSession(s))
}

// Get GET /api/v1/sessions/{sessionId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSession(s))
}

// UpdateDraft PATCH /api/v1/sessions/{sessionId}/draft
// Тело - частичные данные формы; смена даты пересчитывает доступность до ответа
func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxPatchBytes))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// 1. Проверяем тело на копии, чтобы не применять наполовину разобранный патч
	var patch map[string]json.RawMessage
	if err := json.Unmarshal(raw, &patch); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/draft - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	probe := s.State().Draft
	if err := decodeStrict(raw, &probe); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/draft - Invalid draft fields: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// 2. Применяем
	err = s.UpdateDraft(r.Context(), func(d *domain.ReservationDraft) {
		if probe.TipoReserva != d.TipoReserva {
			d.ChangeType(probe.TipoReserva)
		}
		_ = json.Unmarshal(raw, d)
		if _, ok := patch["telefone"]; ok {
			d.Telefone = domain.FormatPhoneBR(d.Telefone)
		}
	})
	if errors.Is(err, session.ErrClosed) {
		handlers.RespondError(w, http.StatusGone, msgSessionClosed)
		return
	}
	if err != nil {
		// Некорректная дата отражается в состоянии как недоступная
		h.logger.Warn("PATCH /sessions/{id}/draft - Update applied with error: id=%s, error=%v", s.ID(), err)
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(s))
}

// Step POST /api/v1/sessions/{sessionId}/step
func (h *Handler) Step(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req StepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/step - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var err error
	switch req.Action {
	case "next":
		_, err = s.Next(r.Context())
	case "prev":
		s.Prev(r.Context())
	case "goto":
		_, err = s.GoTo(r.Context(), req.Step)
	default:
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	var blocked *session.BlockedError
	if errors.As(err, &blocked) {
		handlers.RespondFieldErrors(w, msgStepBlocked, blocked.Reasons)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(s))
}

// Submit POST /api/v1/sessions/{sessionId}/submit
// 201 - отправлено, 202 - сохранено в офлайн очереди
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	result, err := s.Submit(r.Context())
	if err != nil {
		var (
			blocked *session.BlockedError
			failed  *submitReservation.FailedError
		)
		switch {
		case errors.As(err, &blocked):
			handlers.RespondFieldErrors(w, msgStepBlocked, blocked.Reasons)

		case errors.Is(err, session.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmitInProgress)

		case errors.Is(err, session.ErrClosed):
			handlers.RespondError(w, http.StatusGone, msgSessionClosed)

		case errors.As(err, &failed):
			h.logger.Warn("POST /sessions/{id}/submit - Submission failed: id=%s, attempts=%d", s.ID(), failed.Attempts)
			handlers.RespondError(w, http.StatusBadGateway, failed.Message)

		case errors.Is(err, submitReservation.ErrQueueUnavailable):
			h.logger.Error("POST /sessions/{id}/submit - Offline queue unavailable: id=%s, error=%v", s.ID(), err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgQueueUnavailable)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to submit: id=%s, error=%v", s.ID(), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.Offline {
		status = http.StatusAccepted
	}
	handlers.RespondJSON(w, status, result)
}

// Close DELETE /api/v1/sessions/{sessionId}
// Черновик остается в хранилище
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionId"]
	if err := h.manager.Close(id); err != nil {
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := mux.Vars(r)["sessionId"]
	s, err := h.manager.Get(id)
	if err != nil {
		handlers.RespondNotFound(w, msgSessionNotFound)
		return nil, false
	}
	return s, true
}

func decodeStrict(raw []byte, v interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
