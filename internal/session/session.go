package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/internal/usecase/check_spots"
	"github.com/m04kA/Mercearia-ReservationService/internal/usecase/evaluate_panel"
	"github.com/m04kA/Mercearia-ReservationService/internal/usecase/resolve_availability"
	"github.com/m04kA/Mercearia-ReservationService/internal/usecase/submit_reservation"
)

// Deps зависимости сессии
// Drafts может быть nil, тогда черновик не сохраняется
type Deps struct {
	Availability AvailabilityResolver
	Panel        PanelEvaluator
	Spots        SpotsChecker
	Submitter    Submitter
	Drafts       DraftStore
	Validator    FieldValidator
	Logger       Logger
}

// Options параметры сессии
type Options struct {
	// ID идентификатор черновика; пустой - генерируется
	ID       string
	Debounce time.Duration
	Rules    Rules
}

// Session многошаговая форма бронирования
// Все изменения формы проходят через UpdateDraft и сеттеры; проверки мест и панели
// откладываются debouncer'ом, устаревшие результаты отбрасываются по поколению
type Session struct {
	id    string
	deps  Deps
	rules Rules
	store *Store

	spotsDebouncer *Debouncer
	panelDebouncer *Debouncer
	// dateGeneration увеличивается при каждой смене даты
	dateGeneration atomic.Uint64

	timeProvider TimeProvider
	submitMu     sync.Mutex
	closed       atomic.Bool
}

// New создает сессию с пустой формой на первом шаге
func New(deps Deps, options Options) *Session {
	if options.ID == "" {
		options.ID = uuid.NewString()
	}
	if options.Debounce <= 0 {
		options.Debounce = domain.DefaultDebounceInterval
	}

	return &Session{
		id:             options.ID,
		deps:           deps,
		rules:          options.Rules,
		store:          NewStore(initialState()),
		spotsDebouncer: NewDebouncer(options.Debounce),
		panelDebouncer: NewDebouncer(options.Debounce),
		timeProvider:   &RealTimeProvider{},
	}
}

// WithTimeProvider подменяет источник времени
func (s *Session) WithTimeProvider(tp TimeProvider) *Session {
	s.timeProvider = tp
	return s
}

func initialState() State {
	return State{
		Draft:       domain.NewReservationDraft(),
		CurrentStep: domain.StepPersonalData,
		Spots:       domain.UnknownSpotAvailability(),
		Panel:       domain.UnknownPanelEligibility(),
	}
}

// ID идентификатор сессии (и черновика)
func (s *Session) ID() string {
	return s.id
}

// State копия текущего состояния
func (s *Session) State() State {
	return s.store.Snapshot()
}

// Subscribe подписка на изменения состояния
func (s *Session) Subscribe(fn func(State)) func() {
	return s.store.Subscribe(fn)
}

// Restore загружает сохраненный черновик и пересчитывает проверки для его даты
// Возвращает false, если черновика нет или его не удалось прочитать
func (s *Session) Restore(ctx context.Context) bool {
	if s.deps.Drafts == nil {
		return false
	}

	snapshot, err := s.deps.Drafts.Get(ctx, s.id)
	if err != nil {
		s.deps.Logger.Warn("Session: id=%s, draft not restored: %v", s.id, err)
		return false
	}

	s.store.Update(func(st *State) {
		st.Draft = snapshot.FormData
		st.CurrentStep = clampStep(snapshot.CurrentStep)
	})

	if snapshot.FormData.DataReserva != "" {
		if err := s.resolveDate(ctx, snapshot.FormData.DataReserva); err != nil {
			s.deps.Logger.Warn("Session: id=%s, restored date not resolved: %v", s.id, err)
		}
	}

	s.deps.Logger.Info("Session: id=%s, draft restored at step %d", s.id, snapshot.CurrentStep)
	return true
}

// UpdateDraft изменяет форму
// Смена даты синхронно пересчитывает доступность, затем планирует проверки мест и панели;
// смена зоны, количества гостей, типа или панели перепланирует только зависимые проверки
func (s *Session) UpdateDraft(ctx context.Context, fn func(draft *domain.ReservationDraft)) error {
	if s.closed.Load() {
		return ErrClosed
	}

	var before, after domain.ReservationDraft
	s.store.Update(func(st *State) {
		before = st.Draft
		fn(&st.Draft)
		after = st.Draft
	})

	var err error
	if before.DataReserva != after.DataReserva {
		err = s.resolveDate(ctx, after.DataReserva)
	} else {
		spotsChanged := before.LocalDesejado != after.LocalDesejado
		panelChanged := spotsChanged ||
			before.QuantidadePessoas != after.QuantidadePessoas ||
			before.WantsPanel() != after.WantsPanel()
		s.scheduleChecks(spotsChanged, panelChanged)
	}

	s.persist(ctx)
	return err
}

// SetDate выбирает дату (YYYY-MM-DD); пустая строка сбрасывает выбор
func (s *Session) SetDate(ctx context.Context, date string) error {
	return s.UpdateDraft(ctx, func(d *domain.ReservationDraft) { d.DataReserva = date })
}

// SetLocation выбирает зону
func (s *Session) SetLocation(ctx context.Context, location domain.Location) error {
	return s.UpdateDraft(ctx, func(d *domain.ReservationDraft) { d.LocalDesejado = location })
}

// SetPartySize меняет количество гостей
func (s *Session) SetPartySize(ctx context.Context, partySize int) error {
	return s.UpdateDraft(ctx, func(d *domain.ReservationDraft) { d.QuantidadePessoas = partySize })
}

// SetPanel включает или выключает панель
func (s *Session) SetPanel(ctx context.Context, wants bool) error {
	return s.UpdateDraft(ctx, func(d *domain.ReservationDraft) { d.ReservaPainel = wants })
}

// ChangeType меняет тип бронирования, поля панели сбрасываются
func (s *Session) ChangeType(ctx context.Context, t domain.ReservationType) error {
	return s.UpdateDraft(ctx, func(d *domain.ReservationDraft) { d.ChangeType(t) })
}

// CanAdvance причины, по которым текущий шаг нельзя пройти
func (s *Session) CanAdvance() map[string]string {
	state := s.store.Snapshot()
	return Evaluate(state, state.CurrentStep, s.deps.Validator, s.rules)
}

// Next переходит на следующий шаг, если текущий можно пройти
func (s *Session) Next(ctx context.Context) (int, error) {
	state := s.store.Snapshot()
	if reasons := Evaluate(state, state.CurrentStep, s.deps.Validator, s.rules); len(reasons) > 0 {
		return state.CurrentStep, &BlockedError{Step: state.CurrentStep, Reasons: reasons}
	}
	return s.setStep(ctx, state.CurrentStep+1), nil
}

// Prev возвращается на предыдущий шаг
func (s *Session) Prev(ctx context.Context) int {
	state := s.store.Snapshot()
	return s.setStep(ctx, state.CurrentStep-1)
}

// GoTo переходит на шаг; вперед можно пройти, только если все предыдущие шаги проходимы
func (s *Session) GoTo(ctx context.Context, step int) (int, error) {
	step = clampStep(step)
	state := s.store.Snapshot()

	for current := state.CurrentStep; current < step; current++ {
		if reasons := Evaluate(state, current, s.deps.Validator, s.rules); len(reasons) > 0 {
			s.setStep(ctx, current)
			return current, &BlockedError{Step: current, Reasons: reasons}
		}
	}
	return s.setStep(ctx, step), nil
}

func (s *Session) setStep(ctx context.Context, step int) int {
	step = clampStep(step)
	s.store.Update(func(st *State) { st.CurrentStep = step })
	s.persist(ctx)
	return step
}

// Submit отправляет форму
// Отправки в одной сессии последовательны. После успешной отправки (в том числе
// офлайн) форма и черновик очищаются
func (s *Session) Submit(ctx context.Context) (*domain.SubmissionResult, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	if !s.submitMu.TryLock() {
		return nil, ErrSubmissionInProgress
	}
	defer s.submitMu.Unlock()

	// 1. Гейт по всей форме
	state := s.store.Snapshot()
	if reasons := Evaluate(state, domain.StepSummary, s.deps.Validator, s.rules); len(reasons) > 0 {
		return nil, &BlockedError{Step: domain.StepSummary, Reasons: reasons}
	}

	// 2. Тело запроса
	payload := domain.NewSubmissionPayload(state.Draft, uuid.NewString(), s.timeProvider.Now())
	s.store.Update(func(st *State) { st.Submitting = true })

	// 3. Отправка
	result, err := s.deps.Submitter.Execute(ctx, &submit_reservation.Request{Payload: payload})
	if err != nil {
		s.store.Update(func(st *State) { st.Submitting = false })
		s.deps.Logger.Error("Session: id=%s, form_id=%s, submit failed: %v", s.id, payload.FormID, err)
		return nil, fmt.Errorf("submit: %w", err)
	}

	// 4. Очистка формы
	s.resetForm(result)
	if s.deps.Drafts != nil {
		if err := s.deps.Drafts.Delete(ctx, s.id); err != nil {
			s.deps.Logger.Warn("Session: id=%s, draft not deleted: %v", s.id, err)
		}
	}

	s.deps.Logger.Info("Session: id=%s, form_id=%s submitted, offline=%t", s.id, payload.FormID, result.Offline)
	return result, nil
}

// Close останавливает отложенные проверки; результаты запросов в полете игнорируются
func (s *Session) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	s.spotsDebouncer.Stop()
	s.panelDebouncer.Stop()
	s.dateGeneration.Add(1)
}

func (s *Session) resetForm(result *domain.SubmissionResult) {
	s.dateGeneration.Add(1)
	s.spotsDebouncer.Invalidate()
	s.panelDebouncer.Invalidate()

	s.store.Update(func(st *State) {
		*st = initialState()
		st.LastResult = result
	})
}

// resolveDate сбрасывает производные проверки и вычисляет доступность новой даты
// Проверки мест и панели планируются только после получения конфигурации
func (s *Session) resolveDate(ctx context.Context, date string) error {
	// 1. Сброс
	generation := s.dateGeneration.Add(1)
	s.spotsDebouncer.Invalidate()
	s.panelDebouncer.Invalidate()
	s.store.Update(func(st *State) {
		st.Availability = nil
		st.Spots = domain.UnknownSpotAvailability()
		st.Panel = domain.UnknownPanelEligibility()
	})

	if date == "" {
		return nil
	}

	// 2. Конфигурация и доступность
	resp, err := s.deps.Availability.Execute(ctx, &resolve_availability.Request{Date: date})

	result := domain.AvailabilityResult{
		Date:      date,
		Bookable:  false,
		TimeSlots: []string{},
		Message:   domain.MsgDateUnavailable,
	}
	if err == nil {
		result = resp.Result
	}

	// 3. Дата могла смениться, пока шел запрос
	applied := false
	s.store.Update(func(st *State) {
		if s.closed.Load() || s.dateGeneration.Load() != generation {
			return
		}
		st.Availability = &result
		applied = true
	})

	if err != nil {
		s.deps.Logger.Warn("Session: id=%s, date=%s not resolved: %v", s.id, date, err)
		return fmt.Errorf("resolve date: %w", err)
	}
	if applied && result.Bookable {
		s.scheduleChecks(true, true)
	}
	return nil
}

// scheduleChecks перепланирует проверки мест и/или панели для текущей формы
func (s *Session) scheduleChecks(spots, panel bool) {
	if !spots && !panel {
		return
	}

	state := s.store.Snapshot()
	draft := state.Draft
	bookable := state.Availability != nil &&
		state.Availability.Bookable &&
		state.Availability.Date == draft.DataReserva

	if spots {
		// Сначала поколение, затем сброс: результат старой проверки уже не применится
		s.spotsDebouncer.Invalidate()
		s.store.Update(func(st *State) { st.Spots = domain.UnknownSpotAvailability() })

		if bookable && draft.LocalDesejado != "" {
			req := check_spots.Request{Date: draft.DataReserva, Location: draft.LocalDesejado}
			s.spotsDebouncer.Schedule(func(generation uint64) {
				s.runSpotsCheck(generation, req)
			})
		}
	}

	if panel {
		s.panelDebouncer.Invalidate()
		s.store.Update(func(st *State) { st.Panel = domain.UnknownPanelEligibility() })

		if bookable && draft.WantsPanel() {
			req := evaluate_panel.Request{
				Date:      draft.DataReserva,
				PartySize: draft.QuantidadePessoas,
				Location:  draft.LocalDesejado,
			}
			s.panelDebouncer.Schedule(func(generation uint64) {
				s.runPanelCheck(generation, req)
			})
		}
	}
}

func (s *Session) runSpotsCheck(generation uint64, req check_spots.Request) {
	spots := domain.UnknownSpotAvailability()

	resp, err := s.deps.Spots.Execute(context.Background(), &req)
	if err != nil {
		spots.Message = domain.MsgSpotsCheckFailed
		spots.Error = err.Error()
	} else {
		spots = resp.Spots
	}

	s.store.Update(func(st *State) {
		if !s.spotsDebouncer.IsLatest(generation) {
			return
		}
		st.Spots = spots
	})
}

func (s *Session) runPanelCheck(generation uint64, req evaluate_panel.Request) {
	eligibility := domain.UnknownPanelEligibility()

	resp, err := s.deps.Panel.Execute(context.Background(), &req)
	if err != nil {
		eligibility.Message = domain.MsgPanelCheckFailed
		eligibility.Error = err.Error()
	} else {
		eligibility = resp.Eligibility
	}

	s.store.Update(func(st *State) {
		if !s.panelDebouncer.IsLatest(generation) {
			return
		}
		st.Panel = eligibility
	})
}

// persist сохраняет данные формы и текущий шаг; ошибка только логируется
func (s *Session) persist(ctx context.Context) {
	if s.deps.Drafts == nil {
		return
	}

	state := s.store.Snapshot()
	err := s.deps.Drafts.Save(ctx, domain.DraftSnapshot{
		ID:          s.id,
		FormData:    state.Draft,
		CurrentStep: state.CurrentStep,
		UpdatedAt:   s.timeProvider.Now(),
	})
	if err != nil {
		s.deps.Logger.Warn("Session: id=%s, draft not saved: %v", s.id, err)
	}
}

func clampStep(step int) int {
	if step < domain.StepPersonalData {
		return domain.StepPersonalData
	}
	if step > domain.StepSummary {
		return domain.StepSummary
	}
	return step
}
