package submit_reservation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/internal/integrations/webhooks"
)

// UseCase use case отправки бронирования с офлайн очередью
type UseCase struct {
	client       ReservationClient
	queue        QueueRepository
	probe        ConnectivityProbe
	locker       DrainLocker
	publisher    EventPublisher
	metrics      MetricsRecorder
	options      Options
	sleep        Sleeper
	timeProvider TimeProvider
	logger       Logger

	// drainMu не дает двум проходам по очереди работать одновременно в одном процессе
	drainMu sync.Mutex
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client ReservationClient, queue QueueRepository, options Options, logger Logger) *UseCase {
	if options.MaxRetries < 0 {
		options.MaxRetries = 0
	}
	return &UseCase{
		client:       client,
		queue:        queue,
		options:      options,
		sleep:        sleepContext,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithConnectivityProbe подключает проверку сети перед отправкой
func (uc *UseCase) WithConnectivityProbe(probe ConnectivityProbe) *UseCase {
	uc.probe = probe
	return uc
}

// WithDrainLocker подключает распределенную блокировку прохода по очереди
func (uc *UseCase) WithDrainLocker(locker DrainLocker) *UseCase {
	uc.locker = locker
	return uc
}

// WithEventPublisher подключает публикацию событий
func (uc *UseCase) WithEventPublisher(publisher EventPublisher) *UseCase {
	uc.publisher = publisher
	return uc
}

// WithMetrics подключает метрики
func (uc *UseCase) WithMetrics(metrics MetricsRecorder) *UseCase {
	uc.metrics = metrics
	return uc
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// WithSleeper подменяет паузу между попытками
func (uc *UseCase) WithSleeper(sleep Sleeper) *UseCase {
	uc.sleep = sleep
	return uc
}

// Execute отправляет бронирование
// Нет сети - тело сохраняется в очереди и возвращается Success=true, Offline=true
// Другие ошибки повторяются MaxRetries раз, после чего возвращается *FailedError
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.SubmissionResult, error) {
	payload := req.Payload

	// 1. Валидация
	if payload.FormID == "" {
		return nil, fmt.Errorf("%w: formId is required", ErrInvalidPayload)
	}

	uc.logger.Info("SubmitReservation: form_id=%s, date=%s, location=%s",
		payload.FormID, payload.DetalhesReserva.DataReserva, payload.DetalhesReserva.LocalDesejado)

	// 2. Клиент уже знает, что сети нет
	if uc.probe != nil && !uc.probe.IsOnline() {
		uc.logger.Warn("SubmitReservation: form_id=%s, offline, queueing", payload.FormID)
		return uc.enqueue(ctx, payload)
	}

	// 3. Отправка с повторами
	attempts, err := uc.deliver(ctx, payload)
	if err == nil {
		uc.incSubmission(outcomeSent)
		uc.publish(ctx, domain.EventReservationSent, payload)

		uc.logger.Info("SubmitReservation: form_id=%s delivered after %d attempt(s)", payload.FormID, attempts)
		return &domain.SubmissionResult{
			Success: true,
			Message: domain.MsgSubmissionSent,
			FormID:  payload.FormID,
		}, nil
	}

	// 4. Нет сети - в очередь
	if webhooks.IsConnectivityError(err) {
		uc.logger.Warn("SubmitReservation: form_id=%s, service unreachable, queueing: %v", payload.FormID, err)
		return uc.enqueue(ctx, payload)
	}

	// 5. Попытки исчерпаны
	uc.incSubmission(outcomeFailed)
	uc.logger.Error("SubmitReservation: form_id=%s failed after %d attempt(s): %v", payload.FormID, attempts, err)

	message := webhooks.ServiceMessage(err)
	if message == "" {
		message = domain.MsgSubmissionFailed
	}
	return nil, &FailedError{Message: message, Attempts: attempts, Err: err}
}

// Drain повторно отправляет записи офлайн очереди в порядке добавления
// Доставленные записи удаляются одной транзакцией, остальные остаются в очереди
// Одновременные вызовы схлопываются: второй вызов возвращает отчет с Skipped=true
func (uc *UseCase) Drain(ctx context.Context) (*DrainReport, error) {
	// 1. Блокировка в процессе
	if !uc.drainMu.TryLock() {
		uc.logger.Info("DrainQueue: another drain is running, skipping")
		uc.incDrainRun(drainSkipped)
		return &DrainReport{Skipped: true}, nil
	}
	defer uc.drainMu.Unlock()

	// 2. Блокировка между экземплярами
	if uc.locker != nil {
		unlock, acquired, err := uc.locker.TryLock(ctx)
		if err != nil {
			uc.logger.Error("DrainQueue: failed to acquire lock: %v", err)
			uc.incDrainRun(drainFailed)
			return nil, fmt.Errorf("%w: failed to acquire drain lock: %v", ErrQueueUnavailable, err)
		}
		if !acquired {
			uc.logger.Info("DrainQueue: lock held by another instance, skipping")
			uc.incDrainRun(drainSkipped)
			return &DrainReport{Skipped: true}, nil
		}
		defer unlock()
	}

	// 3. Читаем очередь
	entries, err := uc.queue.List(ctx)
	if err != nil {
		uc.logger.Error("DrainQueue: failed to list queue: %v", err)
		uc.incDrainRun(drainFailed)
		return nil, fmt.Errorf("%w: failed to list queue: %v", ErrQueueUnavailable, err)
	}

	report := &DrainReport{
		Total:     len(entries),
		Delivered: []string{},
		Remaining: []string{},
	}
	if len(entries) == 0 {
		uc.incDrainRun(drainCompleted)
		return report, nil
	}

	uc.logger.Info("DrainQueue: processing %d entries", len(entries))

	// 4. Отправляем по порядку, ошибка одной записи не останавливает проход
	delivered := make([]int64, 0, len(entries))
	for _, entry := range entries {
		if ctx.Err() != nil {
			report.Remaining = append(report.Remaining, entry.FormID)
			continue
		}

		if _, err := uc.deliver(ctx, entry.Payload); err != nil {
			uc.logger.Warn("DrainQueue: form_id=%s still undelivered: %v", entry.FormID, err)
			report.Remaining = append(report.Remaining, entry.FormID)
			continue
		}

		delivered = append(delivered, entry.ID)
		report.Delivered = append(report.Delivered, entry.FormID)
		uc.publish(ctx, domain.EventReservationSent, entry.Payload)
	}

	// 5. Удаляем только подтвержденные записи
	if len(delivered) > 0 {
		if err := uc.queue.RemoveDelivered(ctx, delivered); err != nil {
			uc.logger.Error("DrainQueue: failed to remove %d delivered entries: %v", len(delivered), err)
			uc.incDrainRun(drainFailed)
			return nil, fmt.Errorf("%w: failed to remove delivered entries: %v", ErrQueueUnavailable, err)
		}
	}

	uc.addDrained("delivered", len(report.Delivered))
	uc.addDrained("kept", len(report.Remaining))
	uc.incDrainRun(drainCompleted)
	uc.refreshQueueSize(ctx)

	uc.logger.Info("DrainQueue: delivered=%d, remaining=%d", len(report.Delivered), len(report.Remaining))
	return report, nil
}

// Pending возвращает записи офлайн очереди
func (uc *UseCase) Pending(ctx context.Context) ([]domain.OfflineReservationEntry, error) {
	entries, err := uc.queue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list queue: %v", ErrQueueUnavailable, err)
	}
	return entries, nil
}

// deliver отправляет тело с повторами
// Ошибка связи прерывает повторы сразу, отмена контекста тоже
func (uc *UseCase) deliver(ctx context.Context, payload domain.SubmissionPayload) (int, error) {
	var lastErr error
	attempts := 0

	for attempt := 0; attempt <= uc.options.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := uc.sleep(ctx, uc.options.RetryDelay); err != nil {
				return attempts, lastErr
			}
		}

		attempts++
		_, err := uc.client.SubmitReservation(ctx, payload)
		if err == nil {
			return attempts, nil
		}
		lastErr = err

		if webhooks.IsConnectivityError(err) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return attempts, err
		}

		uc.logger.Warn("SubmitReservation: form_id=%s attempt %d/%d failed: %v",
			payload.FormID, attempts, uc.options.MaxRetries+1, err)
	}

	return attempts, lastErr
}

func (uc *UseCase) enqueue(ctx context.Context, payload domain.SubmissionPayload) (*domain.SubmissionResult, error) {
	entry := domain.OfflineReservationEntry{
		FormID:           payload.FormID,
		Payload:          payload,
		OfflineTimestamp: uc.timeProvider.Now().UTC(),
	}

	added, err := uc.queue.Append(ctx, entry)
	if err != nil {
		uc.incSubmission(outcomeFailed)
		uc.logger.Error("SubmitReservation: form_id=%s, failed to queue: %v", payload.FormID, err)
		return nil, fmt.Errorf("%w: failed to append entry: %v", ErrQueueUnavailable, err)
	}
	if !added {
		uc.logger.Info("SubmitReservation: form_id=%s already queued", payload.FormID)
	}

	uc.incSubmission(outcomeQueued)
	uc.publish(ctx, domain.EventReservationQueued, payload)
	uc.refreshQueueSize(ctx)

	return &domain.SubmissionResult{
		Success: true,
		Offline: true,
		Message: domain.MsgSubmissionOffline,
		FormID:  payload.FormID,
	}, nil
}

// publish события не влияют на результат отправки
func (uc *UseCase) publish(ctx context.Context, eventType string, payload domain.SubmissionPayload) {
	if uc.publisher == nil {
		return
	}
	event := domain.ReservationEvent{
		Type:       eventType,
		FormID:     payload.FormID,
		OccurredAt: uc.timeProvider.Now().UTC(),
		Payload:    payload,
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("SubmitReservation: failed to publish %s for form_id=%s: %v", eventType, payload.FormID, err)
	}
}

func (uc *UseCase) refreshQueueSize(ctx context.Context) {
	if uc.metrics == nil {
		return
	}
	count, err := uc.queue.Count(ctx)
	if err != nil {
		uc.logger.Warn("SubmitReservation: failed to count queue: %v", err)
		return
	}
	uc.metrics.SetOfflineQueueSize(count)
}

func (uc *UseCase) incSubmission(outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncSubmission(outcome)
	}
}

func (uc *UseCase) incDrainRun(result string) {
	if uc.metrics != nil {
		uc.metrics.IncDrainRun(result)
	}
}

func (uc *UseCase) addDrained(outcome string, count int) {
	if uc.metrics != nil && count > 0 {
		uc.metrics.AddDrainedEntries(outcome, count)
	}
}
