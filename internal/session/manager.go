package session

import (
	"context"
	"sync"
	"time"
)

// Manager реестр открытых сессий
// Сессия без обращений дольше idleTTL выгружается; черновик остается в хранилище
type Manager struct {
	deps    Deps
	options Options

	idleTTL      time.Duration
	timeProvider TimeProvider

	mu       sync.RWMutex
	sessions map[string]*managedSession
}

type managedSession struct {
	session    *Session
	lastAccess time.Time
}

// NewManager создает реестр; options.ID игнорируется
func NewManager(deps Deps, options Options) *Manager {
	options.ID = ""
	return &Manager{
		deps:         deps,
		options:      options,
		timeProvider: &RealTimeProvider{},
		sessions:     make(map[string]*managedSession),
	}
}

// WithIdleTTL включает выгрузку простаивающих сессий (0 - не выгружать)
func (m *Manager) WithIdleTTL(ttl time.Duration) *Manager {
	m.idleTTL = ttl
	return m
}

// WithTimeProvider подменяет источник времени
func (m *Manager) WithTimeProvider(tp TimeProvider) *Manager {
	m.timeProvider = tp
	return m
}

// Open открывает сессию для черновика id (пустой id - новый черновик)
// Уже открытая сессия возвращается как есть, иначе черновик восстанавливается из хранилища
func (m *Manager) Open(ctx context.Context, id string) *Session {
	if id != "" {
		if s, err := m.Get(id); err == nil {
			return s
		}
	}

	options := m.options
	options.ID = id
	s := New(m.deps, options)

	m.mu.Lock()
	if existing, ok := m.sessions[s.ID()]; ok {
		existing.lastAccess = m.timeProvider.Now()
		m.mu.Unlock()
		s.Close()
		return existing.session
	}
	m.sessions[s.ID()] = &managedSession{session: s, lastAccess: m.timeProvider.Now()}
	m.mu.Unlock()

	if id != "" {
		s.Restore(ctx)
	}
	return s
}

// Get возвращает открытую сессию и отмечает обращение к ней
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	entry.lastAccess = m.timeProvider.Now()
	return entry.session, nil
}

// Close закрывает сессию и убирает ее из реестра
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	entry, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	entry.session.Close()
	return nil
}

// Len количество открытых сессий
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// EvictIdle закрывает сессии без обращений дольше idleTTL и возвращает их количество
// Сессия с отправкой в процессе не выгружается
func (m *Manager) EvictIdle() int {
	if m.idleTTL <= 0 {
		return 0
	}
	deadline := m.timeProvider.Now().Add(-m.idleTTL)

	m.mu.Lock()
	var evicted []*Session
	for id, entry := range m.sessions {
		if !entry.lastAccess.Before(deadline) || entry.session.State().Submitting {
			continue
		}
		delete(m.sessions, id)
		evicted = append(evicted, entry.session)
	}
	m.mu.Unlock()

	for _, s := range evicted {
		s.Close()
	}
	return len(evicted)
}

// RunEvictor периодически выгружает простаивающие сессии до отмены ctx
func (m *Manager) RunEvictor(ctx context.Context, interval time.Duration) {
	if m.idleTTL <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.EvictIdle(); n > 0 {
				m.deps.Logger.Info("SessionManager: evicted %d idle session(s), open=%d", n, m.Len())
			}
		}
	}
}

// CloseAll закрывает все сессии
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*managedSession)
	m.mu.Unlock()

	for _, entry := range sessions {
		entry.session.Close()
	}
}
