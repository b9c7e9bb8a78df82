package sessions

import (
	"context"

	"github.com/m04kA/Mercearia-ReservationService/internal/session"
)

type SessionManager interface {
	Open(ctx context.Context, id string) *session.Session
	Get(id string) (*session.Session, error)
	Close(id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
