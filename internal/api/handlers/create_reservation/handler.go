package create_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Mercearia-ReservationService/internal/api/handlers"
	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/internal/session"
	checkSpots "github.com/m04kA/Mercearia-ReservationService/internal/usecase/check_spots"
	evaluatePanel "github.com/m04kA/Mercearia-ReservationService/internal/usecase/evaluate_panel"
	resolveAvailability "github.com/m04kA/Mercearia-ReservationService/internal/usecase/resolve_availability"
	submitReservation "github.com/m04kA/Mercearia-ReservationService/internal/usecase/submit_reservation"
	"github.com/m04kA/Mercearia-ReservationService/internal/validation"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido"
	msgValidationFailed   = "Verifique os campos destacados"
	msgQueueUnavailable   = "Não foi possível salvar sua reserva localmente. Tente novamente."
)

type Handler struct {
	validator    DraftValidator
	availability ResolveAvailabilityUseCase
	spots        CheckSpotsUseCase
	panel        EvaluatePanelUseCase
	useCase      SubmitReservationUseCase
	rules        session.Rules
	logger       Logger
	now          func() time.Time
}

func NewHandler(
	validator DraftValidator,
	availability ResolveAvailabilityUseCase,
	spots CheckSpotsUseCase,
	panel EvaluatePanelUseCase,
	useCase SubmitReservationUseCase,
	logger Logger,
) *Handler {
	return &Handler{
		validator:    validator,
		availability: availability,
		spots:        spots,
		panel:        panel,
		useCase:      useCase,
		logger:       logger,
		now:          time.Now,
	}
}

// WithRules задает параметры правил (минимум гостей для панели)
func (h *Handler) WithRules(rules session.Rules) *Handler {
	h.rules = rules
	return h
}

// Handle POST /api/v1/reservations
// 201 - отправлено, 202 - сохранено в офлайн очереди, 422 - ошибки полей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	draft := req.FormData

	// 1. Поля формы
	if err := h.validator.ValidateDraft(draft); err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondFieldErrors(w, msgValidationFailed, validationErr.FieldErrors)
			return
		}
		h.logger.Error("POST /reservations - Validator error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// 2. Дата, время, места и панель по тем же правилам, что и шаги формы
	fields, err := h.availabilityBlockers(r, draft)
	if err != nil {
		h.logger.Warn("POST /reservations - Date not resolved: date=%s, error=%v", draft.DataReserva, err)
		handlers.RespondFieldErrors(w, msgValidationFailed, map[string]string{"dataReserva": domain.MsgDateUnavailable})
		return
	}
	if len(fields) > 0 {
		h.logger.Warn("POST /reservations - Reservation blocked: date=%s, time=%s, location=%s, fields=%v",
			draft.DataReserva, draft.HorarioDesejado, draft.LocalDesejado, fields)
		handlers.RespondFieldErrors(w, msgValidationFailed, fields)
		return
	}

	// 3. Отправка
	formID := req.FormID
	if formID == "" {
		formID = uuid.NewString()
	}
	payload := domain.NewSubmissionPayload(draft, formID, h.now())

	result, err := h.useCase.Execute(r.Context(), &submitReservation.Request{Payload: payload})
	if err != nil {
		var failed *submitReservation.FailedError
		switch {
		case errors.As(err, &failed):
			h.logger.Warn("POST /reservations - Submission failed: form_id=%s, attempts=%d", formID, failed.Attempts)
			handlers.RespondError(w, http.StatusBadGateway, failed.Message)

		case errors.Is(err, submitReservation.ErrQueueUnavailable):
			h.logger.Error("POST /reservations - Offline queue unavailable: form_id=%s, error=%v", formID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgQueueUnavailable)

		case errors.Is(err, submitReservation.ErrInvalidPayload):
			h.logger.Warn("POST /reservations - Invalid payload: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations - Failed to submit: form_id=%s, error=%v", formID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.Offline {
		status = http.StatusAccepted
	}

	h.logger.Info("POST /reservations - Reservation accepted: form_id=%s, offline=%t", formID, result.Offline)
	handlers.RespondJSON(w, status, result)
}

// availabilityBlockers проверяет дату, затем места и панель во внешних сервисах
// Ошибка возвращается только если дату не удалось разобрать
func (h *Handler) availabilityBlockers(r *http.Request, draft domain.ReservationDraft) (map[string]string, error) {
	ctx := r.Context()

	resolved, err := h.availability.Execute(ctx, &resolveAvailability.Request{Date: draft.DataReserva})
	if err != nil {
		return nil, err
	}

	state := session.State{
		Draft:        draft,
		Availability: &resolved.Result,
		Spots:        domain.UnknownSpotAvailability(),
		Panel:        domain.UnknownPanelEligibility(),
	}
	if !resolved.Result.Bookable {
		return session.AvailabilityBlockers(state, h.rules), nil
	}

	spots, err := h.spots.Execute(ctx, &checkSpots.Request{Date: draft.DataReserva, Location: draft.LocalDesejado})
	if err != nil {
		h.logger.Error("POST /reservations - Spots check failed: date=%s, location=%s, error=%v",
			draft.DataReserva, draft.LocalDesejado, err)
		state.Spots.Message = domain.MsgSpotsCheckFailed
		state.Spots.Error = err.Error()
	} else {
		state.Spots = spots.Spots
	}

	if draft.WantsPanel() {
		panel, err := h.panel.Execute(ctx, &evaluatePanel.Request{
			Date:      draft.DataReserva,
			PartySize: draft.QuantidadePessoas,
			Location:  draft.LocalDesejado,
		})
		if err != nil {
			h.logger.Error("POST /reservations - Panel check failed: date=%s, error=%v", draft.DataReserva, err)
		} else {
			state.Panel = panel.Eligibility
		}
	}

	return session.AvailabilityBlockers(state, h.rules), nil
}
