package session

import (
	"context"
	"time"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/internal/usecase/check_spots"
	"github.com/m04kA/Mercearia-ReservationService/internal/usecase/evaluate_panel"
	"github.com/m04kA/Mercearia-ReservationService/internal/usecase/resolve_availability"
	"github.com/m04kA/Mercearia-ReservationService/internal/usecase/submit_reservation"
)

// AvailabilityResolver вычисление доступности даты
type AvailabilityResolver interface {
	Execute(ctx context.Context, req *resolve_availability.Request) (*resolve_availability.Response, error)
}

// PanelEvaluator проверка доступности панели
type PanelEvaluator interface {
	Execute(ctx context.Context, req *evaluate_panel.Request) (*evaluate_panel.Response, error)
}

// SpotsChecker проверка наличия мест
type SpotsChecker interface {
	Execute(ctx context.Context, req *check_spots.Request) (*check_spots.Response, error)
}

// Submitter отправка бронирования
type Submitter interface {
	Execute(ctx context.Context, req *submit_reservation.Request) (*domain.SubmissionResult, error)
}

// DraftStore хранилище черновиков
type DraftStore interface {
	Save(ctx context.Context, snapshot domain.DraftSnapshot) error
	Get(ctx context.Context, id string) (*domain.DraftSnapshot, error)
	Delete(ctx context.Context, id string) error
}

// FieldValidator проверка полей шага
// Ошибки полей возвращаются как *validation.Error
type FieldValidator interface {
	ValidateStep(draft domain.ReservationDraft, step int) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}
