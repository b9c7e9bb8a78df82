package connectivity

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"sync"
	"sync/atomic"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// DialFunc функция установки соединения (подменяется в тестах)
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Monitor периодически проверяет доступность хоста внешнего сервиса
// и вызывает подписчиков при переходе offline -> online
type Monitor struct {
	address  string
	interval time.Duration
	timeout  time.Duration
	dial     DialFunc
	logger   Logger

	online atomic.Bool

	mu        sync.Mutex
	listeners []func()
}

// NewMonitor создает монитор для хоста из URL webhook'а
// До первой проверки сеть считается доступной
func NewMonitor(rawURL string, interval, timeout time.Duration, logger Logger) (*Monitor, error) {
	address, err := hostPort(rawURL)
	if err != nil {
		return nil, err
	}

	dialer := &net.Dialer{}
	m := &Monitor{
		address:  address,
		interval: interval,
		timeout:  timeout,
		dial:     dialer.DialContext,
		logger:   logger,
	}
	m.online.Store(true)
	return m, nil
}

// WithDialer подменяет функцию соединения
func (m *Monitor) WithDialer(dial DialFunc) *Monitor {
	m.dial = dial
	return m
}

// IsOnline возвращает результат последней проверки
func (m *Monitor) IsOnline() bool {
	return m.online.Load()
}

// OnOnline регистрирует обработчик перехода offline -> online
// Обработчик вызывается в отдельной горутине
func (m *Monitor) OnOnline(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Check выполняет одну проверку и обновляет состояние
func (m *Monitor) Check(ctx context.Context) bool {
	dialCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	conn, err := m.dial(dialCtx, "tcp", m.address)
	online := err == nil
	if conn != nil {
		_ = conn.Close()
	}

	previous := m.online.Swap(online)
	switch {
	case previous && !online:
		m.logger.Warn("Connectivity: %s unreachable, switching to offline mode: %v", m.address, err)
	case !previous && online:
		m.logger.Info("Connectivity: %s reachable again", m.address)
		m.notify()
	}
	return online
}

// Run проверяет связь с заданным интервалом до отмены контекста
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

func (m *Monitor) notify() {
	m.mu.Lock()
	listeners := append([]func(){}, m.listeners...)
	m.mu.Unlock()

	for _, fn := range listeners {
		go fn()
	}
}

func hostPort(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("connectivity: invalid url %q: %w", rawURL, err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("connectivity: url %q has no host", rawURL)
	}

	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		default:
			port = "80"
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}
