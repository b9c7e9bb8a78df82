package save_draft

import (
	"context"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

type DraftSaver interface {
	Save(ctx context.Context, snapshot domain.DraftSnapshot) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
