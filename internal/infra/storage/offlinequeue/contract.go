package offlinequeue

import (
	"context"

	"github.com/m04kA/Mercearia-ReservationService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor

// TxManager выполняет функцию в транзакции
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
