package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Mercearia-ReservationService/pkg/psqlbuilder"
)

const tableName = "drafts"

// Repository хранилище черновиков формы
// Сохраняются только данные формы и текущий шаг
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{
		db:      db,
		builder: psqlbuilder.For(dialect),
	}
}

// Save создает или перезаписывает черновик
func (r *Repository) Save(ctx context.Context, snapshot domain.DraftSnapshot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	formData, err := json.Marshal(snapshot.FormData)
	if err != nil {
		return fmt.Errorf("%w: Save: %v", ErrEncode, err)
	}

	query, args, err := r.builder.Insert(tableName).
		Columns("id", "form_data", "current_step", "updated_at").
		Values(snapshot.ID, string(formData), snapshot.CurrentStep, snapshot.UpdatedAt.UTC().Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT (id) DO UPDATE SET form_data = excluded.form_data, current_step = excluded.current_step, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Get получает черновик по id
func (r *Repository) Get(ctx context.Context, id string) (*domain.DraftSnapshot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select("id", "form_data", "current_step", "updated_at").
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		snapshot  domain.DraftSnapshot
		formData  string
		updatedAt string
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&snapshot.ID, &formData, &snapshot.CurrentStep, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan draft: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal([]byte(formData), &snapshot.FormData); err != nil {
		return nil, fmt.Errorf("%w: Get - decode form data: %v", ErrEncode, err)
	}
	snapshot.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - parse updated_at: %v", ErrScanRow, err)
	}

	return &snapshot, nil
}

// Delete удаляет черновик
// Удаление несуществующего черновика возвращает ErrDraftNotFound
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrDraftNotFound
	}
	return nil
}
