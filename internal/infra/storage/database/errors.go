package database

import "errors"

var (
	// ErrUnsupportedDriver возвращается для неизвестного драйвера хранилища
	ErrUnsupportedDriver = errors.New("database: unsupported driver")

	// ErrOpen возвращается, когда не удалось открыть или настроить соединение
	ErrOpen = errors.New("database: failed to open")

	// ErrMigrate возвращается при ошибке создания схемы
	ErrMigrate = errors.New("database: failed to migrate")
)
