package get_draft

import (
	"context"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

type DraftGetter interface {
	Get(ctx context.Context, id string) (*domain.DraftSnapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
