package resolve_availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

// UseCase use case для проверки доступности даты
type UseCase struct {
	provider     ConfigProvider
	resolver     Resolver
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger

	mu      sync.RWMutex
	current domain.AvailabilityConfig
}

// NewUseCase создает новый экземпляр use case
// location временная зона заведения, по ней определяется "сегодня"
func NewUseCase(provider ConfigProvider, resolver Resolver, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		provider:     provider,
		resolver:     resolver,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		current:      domain.DefaultAvailabilityConfig(),
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute заново получает конфигурацию и вычисляет доступность даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация даты
	if _, err := domain.ParseDate(req.Date, uc.location); err != nil {
		uc.logger.Warn("ResolveAvailability: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	// 2. Конфигурация запрашивается при каждой смене даты, она могла измениться
	config, fallback := uc.Refresh(ctx)

	// 3. Вычисляем доступность
	now := uc.timeProvider.Now().In(uc.location)
	result := uc.resolver.Resolve(config, req.Date, now)

	uc.logger.Info("ResolveAvailability: date=%s, bookable=%t, slots=%d, fallback=%t",
		req.Date, result.Bookable, len(result.TimeSlots), fallback)

	return &Response{
		Result:   result,
		Config:   config,
		Fallback: fallback,
	}, nil
}

// Refresh получает конфигурацию из внешнего сервиса
// При ошибке используется конфигурация по умолчанию, ошибка только логируется
func (uc *UseCase) Refresh(ctx context.Context) (domain.AvailabilityConfig, bool) {
	config, err := uc.provider.GetAvailabilityConfig(ctx)
	if err != nil || config == nil {
		uc.logger.Warn("ResolveAvailability: failed to fetch config, using defaults: %v", err)
		config := domain.DefaultAvailabilityConfig()
		uc.store(config)
		return config, true
	}

	uc.store(*config)
	return *config, false
}

// Current возвращает последнюю полученную конфигурацию
func (uc *UseCase) Current() domain.AvailabilityConfig {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current
}

// Location временная зона заведения
func (uc *UseCase) Location() *time.Location {
	return uc.location
}

func (uc *UseCase) store(config domain.AvailabilityConfig) {
	uc.mu.Lock()
	uc.current = config
	uc.mu.Unlock()
}
