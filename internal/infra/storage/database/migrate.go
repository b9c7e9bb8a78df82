package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/Mercearia-ReservationService/pkg/psqlbuilder"
)

// Временные метки хранятся как текст RFC3339 с наносекундами, одинаково для обоих драйверов

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS offline_reservations (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		form_id           TEXT NOT NULL UNIQUE,
		payload           TEXT NOT NULL,
		offline_timestamp TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS drafts (
		id           TEXT PRIMARY KEY,
		form_data    TEXT NOT NULL,
		current_step INTEGER NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS offline_reservations (
		id                BIGSERIAL PRIMARY KEY,
		form_id           TEXT NOT NULL UNIQUE,
		payload           JSONB NOT NULL,
		offline_timestamp TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS drafts (
		id           TEXT PRIMARY KEY,
		form_data    JSONB NOT NULL,
		current_step INTEGER NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
}

// Migrate создает таблицы офлайн очереди и черновиков, если их нет
func Migrate(ctx context.Context, db *sql.DB, dialect psqlbuilder.Dialect) error {
	schema := sqliteSchema
	if dialect == psqlbuilder.DialectPostgres {
		schema = postgresSchema
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %v", ErrMigrate, err)
		}
	}
	return nil
}
