package session

import (
	"sync"
	"time"
)

// Debouncer откладывает проверку и помечает каждую поколением
// Новый вызов Schedule отменяет таймер предыдущего; результат применяется,
// только если его поколение все еще последнее
type Debouncer struct {
	mu         sync.Mutex
	interval   time.Duration
	timer      *time.Timer
	generation uint64
	stopped    bool
}

// NewDebouncer создает debouncer с заданной задержкой
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Schedule планирует fn через interval и возвращает его поколение
func (d *Debouncer) Schedule(fn func(generation uint64)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.stopped {
		return d.generation
	}

	generation := d.generation
	d.timer = time.AfterFunc(d.interval, func() {
		if d.IsLatest(generation) {
			fn(generation)
		}
	})
	return generation
}

// Invalidate отменяет отложенный вызов и делает устаревшими уже запущенные
func (d *Debouncer) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// IsLatest возвращает true, если поколение последнее и debouncer не остановлен
func (d *Debouncer) IsLatest(generation uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.stopped && generation == d.generation
}

// Stop отменяет таймер; последующие результаты игнорируются
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
