package offlinequeue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Mercearia-ReservationService/pkg/psqlbuilder"
)

const tableName = "offline_reservations"

// deleteBatchSize ограничение на число параметров в одном DELETE
const deleteBatchSize = 500

// Repository офлайн очередь бронирований
// Порядок записей определяется автоинкрементным id
type Repository struct {
	db      DBExecutor
	tx      TxManager
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor, tx TxManager, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{
		db:      db,
		tx:      tx,
		builder: psqlbuilder.For(dialect),
	}
}

// Append добавляет запись в конец очереди
// Запись с уже существующим form_id игнорируется, added=false
func (r *Repository) Append(ctx context.Context, entry domain.OfflineReservationEntry) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return false, fmt.Errorf("%w: Append: %v", ErrEncode, err)
	}

	query, args, err := r.builder.Insert(tableName).
		Columns("form_id", "payload", "offline_timestamp").
		Values(entry.FormID, string(payload), entry.OfflineTimestamp.UTC().Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT (form_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Append - rows affected: %v", ErrExecQuery, err)
	}
	return affected > 0, nil
}

// List возвращает все записи в порядке добавления
func (r *Repository) List(ctx context.Context) ([]domain.OfflineReservationEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select("id", "form_id", "payload", "offline_timestamp").
		From(tableName).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.OfflineReservationEntry, 0)
	for rows.Next() {
		var (
			entry     domain.OfflineReservationEntry
			payload   string
			timestamp string
		)
		if err := rows.Scan(&entry.ID, &entry.FormID, &payload, &timestamp); err != nil {
			return nil, fmt.Errorf("%w: List - scan entry: %v", ErrScanRow, err)
		}
		if err := json.Unmarshal([]byte(payload), &entry.Payload); err != nil {
			return nil, fmt.Errorf("%w: List - decode payload id=%d: %v", ErrEncode, entry.ID, err)
		}
		entry.OfflineTimestamp, err = time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: List - parse timestamp id=%d: %v", ErrScanRow, entry.ID, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return entries, nil
}

// RemoveDelivered удаляет доставленные записи одной транзакцией
// Либо удаляются все переданные id, либо ни один
func (r *Repository) RemoveDelivered(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	err := r.tx.Do(ctx, func(ctx context.Context) error {
		executor := dbmetrics.GetExecutor(ctx, r.db)

		for start := 0; start < len(ids); start += deleteBatchSize {
			end := start + deleteBatchSize
			if end > len(ids) {
				end = len(ids)
			}

			query, args, err := r.builder.Delete(tableName).
				Where(squirrel.Eq{"id": ids[start:end]}).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: RemoveDelivered - build delete query: %v", ErrBuildQuery, err)
			}

			if _, err := executor.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: RemoveDelivered - execute delete: %v", ErrExecQuery, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: RemoveDelivered: %v", ErrTransaction, err)
	}
	return nil
}

// Count возвращает количество записей в очереди
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select("COUNT(*)").From(tableName).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan: %v", ErrScanRow, err)
	}
	return count, nil
}
