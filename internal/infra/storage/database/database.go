package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/m04kA/Mercearia-ReservationService/pkg/psqlbuilder"
)

// Драйверы хранилища
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config параметры подключения к локальному хранилищу
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	BusyTimeout     time.Duration // только sqlite
}

// Open открывает соединение, настраивает пул и проверяет его
// Для sqlite создается каталог файла и включается WAL
func Open(ctx context.Context, cfg Config) (*sql.DB, psqlbuilder.Dialect, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		db, err := openSQLite(ctx, cfg)
		return db, psqlbuilder.DialectSQLite, err
	case DriverPostgres:
		db, err := openPostgres(ctx, cfg)
		return db, psqlbuilder.DialectPostgres, err
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func openSQLite(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.DSN != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0o755); err != nil {
			return nil, fmt.Errorf("%w: create directory for %s: %v", ErrOpen, cfg.DSN, err)
		}
	}

	db, err := sql.Open(DriverSQLite, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite: %v", ErrOpen, err)
	}

	// sqlite допускает одного писателя, PRAGMA действуют на соединение
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	busyTimeout := cfg.BusyTimeout
	if busyTimeout <= 0 {
		busyTimeout = 5 * time.Second
	}

	pragmas := []string{
		fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds()),
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %s: %v", ErrOpen, pragma, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping sqlite: %v", ErrOpen, err)
	}
	return db, nil
}

func openPostgres(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open(DriverPostgres, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: postgres: %v", ErrOpen, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping postgres: %v", ErrOpen, err)
	}
	return db, nil
}
