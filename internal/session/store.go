package session

import (
	"sync"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

// State состояние формы и производные проверки
type State struct {
	Draft       domain.ReservationDraft `json:"formData"`
	CurrentStep int                     `json:"currentStep"`
	// Availability nil, пока дата не выбрана или не проверена
	Availability *domain.AvailabilityResult `json:"availability"`
	Spots        domain.SpotAvailability    `json:"spots"`
	Panel        domain.PanelEligibility    `json:"panel"`
	Submitting   bool                       `json:"submitting"`
	LastResult   *domain.SubmissionResult   `json:"lastResult,omitempty"`
}

func (s State) clone() State {
	if s.Availability != nil {
		availability := *s.Availability
		availability.TimeSlots = append([]string(nil), s.Availability.TimeSlots...)
		s.Availability = &availability
	}
	if s.LastResult != nil {
		result := *s.LastResult
		s.LastResult = &result
	}
	return s
}

// Store контейнер состояния с подписчиками
// Изменения выполняются только через Update
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers map[int]func(State)
	nextID      int
}

// NewStore создает хранилище с начальным состоянием
func NewStore(initial State) *Store {
	return &Store{
		state:       initial,
		subscribers: make(map[int]func(State)),
	}
}

// Snapshot возвращает копию текущего состояния
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Update изменяет состояние и уведомляет подписчиков
// Подписчики вызываются вне блокировки с копией нового состояния
func (s *Store) Update(fn func(*State)) State {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state.clone()
	subscribers := make([]func(State), 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subscribers = append(subscribers, sub)
	}
	s.mu.Unlock()

	for _, sub := range subscribers {
		sub(snapshot.clone())
	}
	return snapshot
}

// Subscribe регистрирует подписчика, возвращает функцию отписки
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}
