package submit_reservation

import (
	"context"
	"time"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/internal/integrations/webhooks"
)

// ReservationClient клиент webhook'а бронирования
type ReservationClient interface {
	SubmitReservation(ctx context.Context, payload domain.SubmissionPayload) (*webhooks.SubmitResponse, error)
}

// QueueRepository долговременная офлайн очередь
type QueueRepository interface {
	// Append добавляет запись, повторная запись с тем же formId игнорируется (added=false)
	Append(ctx context.Context, entry domain.OfflineReservationEntry) (added bool, err error)
	// List возвращает записи в порядке добавления
	List(ctx context.Context) ([]domain.OfflineReservationEntry, error)
	// RemoveDelivered атомарно удаляет доставленные записи
	RemoveDelivered(ctx context.Context, ids []int64) error
	Count(ctx context.Context) (int, error)
}

// ConnectivityProbe сообщает, есть ли связь с внешним сервисом
type ConnectivityProbe interface {
	IsOnline() bool
}

// DrainLocker блокировка, общая для нескольких экземпляров сервиса
type DrainLocker interface {
	// TryLock возвращает acquired=false, если блокировку держит кто-то другой
	TryLock(ctx context.Context) (unlock func(), acquired bool, err error)
}

// EventPublisher публикует события о бронированиях
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ReservationEvent) error
}

// MetricsRecorder интерфейс для метрик отправки
type MetricsRecorder interface {
	IncSubmission(outcome string)
	SetOfflineQueueSize(size int)
	IncDrainRun(result string)
	AddDrainedEntries(outcome string, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
