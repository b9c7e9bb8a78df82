package submit_reservation

import (
	"context"
	"time"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

// Параметры повторов по умолчанию
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
)

// Исходы отправки для метрик
const (
	outcomeSent   = "sent"
	outcomeQueued = "queued"
	outcomeFailed = "failed"
)

// Результаты прохода по очереди
const (
	drainCompleted = "completed"
	drainSkipped   = "skipped"
	drainFailed    = "failed"
)

// Options параметры отправки
type Options struct {
	// MaxRetries количество повторов после первой попытки
	MaxRetries int
	// RetryDelay фиксированная пауза между попытками
	RetryDelay time.Duration
}

// Request модель запроса на отправку
type Request struct {
	Payload domain.SubmissionPayload
}

// DrainReport итог прохода по офлайн очереди
type DrainReport struct {
	Skipped   bool     `json:"skipped"`
	Total     int      `json:"total"`
	Delivered []string `json:"delivered"`
	Remaining []string `json:"remaining"`
}

// Sleeper пауза между попытками, прерывается отменой контекста
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
