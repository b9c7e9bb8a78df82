package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/internal/usecase/check_spots"
	"github.com/m04kA/Mercearia-ReservationService/internal/usecase/evaluate_panel"
	"github.com/m04kA/Mercearia-ReservationService/internal/usecase/resolve_availability"
	"github.com/m04kA/Mercearia-ReservationService/internal/usecase/submit_reservation"
	"github.com/m04kA/Mercearia-ReservationService/internal/validation"
	"github.com/m04kA/Mercearia-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var errRemote = errors.New("remote failed")

// fakeAvailability все даты доступны, кроме перечисленных в closed
type fakeAvailability struct {
	mu     sync.Mutex
	closed map[string]string
	calls  []string
}

func (f *fakeAvailability) Execute(_ context.Context, req *resolve_availability.Request) (*resolve_availability.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req.Date)

	if _, err := domain.ParseDate(req.Date, nil); err != nil {
		return nil, resolve_availability.ErrInvalidDate
	}
	if msg, ok := f.closed[req.Date]; ok {
		return &resolve_availability.Response{Result: domain.AvailabilityResult{
			Date: req.Date, TimeSlots: []string{}, Message: msg,
		}}, nil
	}
	return &resolve_availability.Response{Result: domain.AvailabilityResult{
		Date: req.Date, Bookable: true, TimeSlots: []string{"18:00", "18:30", "19:00"},
	}}, nil
}

func (f *fakeAvailability) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// fakeSpots ответ по зоне; зона из block ждет закрытия канала
type fakeSpots struct {
	mu      sync.Mutex
	answers map[domain.Location]types.Tristate
	block   map[domain.Location]chan struct{}
	err     error
	calls   []check_spots.Request
}

func (f *fakeSpots) Execute(_ context.Context, req *check_spots.Request) (*check_spots.Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, *req)
	wait := f.block[req.Location]
	answer, ok := f.answers[req.Location]
	err := f.err
	f.mu.Unlock()

	if wait != nil {
		<-wait
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		answer = types.Yes
	}
	return &check_spots.Response{Spots: domain.SpotAvailability{Available: answer, Message: string(req.Location)}}, nil
}

func (f *fakeSpots) Calls() []check_spots.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]check_spots.Request(nil), f.calls...)
}

type fakePanel struct {
	mu        sync.Mutex
	available bool
	calls     []evaluate_panel.Request
}

func (f *fakePanel) Execute(_ context.Context, req *evaluate_panel.Request) (*evaluate_panel.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, *req)

	eligibility := evaluate_panel.Evaluate(req.PartySize, req.Location, domain.PanelSlots{Available: f.available, Count: 1})
	return &evaluate_panel.Response{Eligibility: eligibility}, nil
}

func (f *fakePanel) Calls() []evaluate_panel.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]evaluate_panel.Request(nil), f.calls...)
}

type fakeSubmitter struct {
	mu       sync.Mutex
	payloads []domain.SubmissionPayload
	block    chan struct{}
	started  chan struct{}
	result   *domain.SubmissionResult
	err      error
}

func (f *fakeSubmitter) Execute(_ context.Context, req *submit_reservation.Request) (*domain.SubmissionResult, error) {
	f.mu.Lock()
	f.payloads = append(f.payloads, req.Payload)
	block, started := f.block, f.started
	f.mu.Unlock()

	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &domain.SubmissionResult{Success: true, Message: domain.MsgSubmissionSent, FormID: req.Payload.FormID}, nil
}

func (f *fakeSubmitter) Payloads() []domain.SubmissionPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.SubmissionPayload(nil), f.payloads...)
}

var errDraftNotFound = errors.New("draft not found")

type fakeDrafts struct {
	mu      sync.Mutex
	items   map[string]domain.DraftSnapshot
	deleted []string
}

func newFakeDrafts() *fakeDrafts {
	return &fakeDrafts{items: make(map[string]domain.DraftSnapshot)}
}

func (f *fakeDrafts) Save(_ context.Context, snapshot domain.DraftSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[snapshot.ID] = snapshot
	return nil
}

func (f *fakeDrafts) Get(_ context.Context, id string) (*domain.DraftSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	snapshot, ok := f.items[id]
	if !ok {
		return nil, errDraftNotFound
	}
	return &snapshot, nil
}

func (f *fakeDrafts) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	delete(f.items, id)
	return nil
}

func (f *fakeDrafts) Snapshot(id string) (domain.DraftSnapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	snapshot, ok := f.items[id]
	return snapshot, ok
}

// fakeValidator ошибки по шагам
type fakeValidator struct {
	byStep map[int]map[string]string
}

func (f fakeValidator) ValidateStep(_ domain.ReservationDraft, step int) error {
	if fields, ok := f.byStep[step]; ok && len(fields) > 0 {
		return &validation.Error{FieldErrors: fields}
	}
	return nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
