package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих файл (MERCEARIA_SERVER_HTTP_PORT и т.д.)
const EnvPrefix = "MERCEARIA"

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrEnvOverride возвращается при некорректной переменной окружения
	ErrEnvOverride = errors.New("config: failed to apply environment overrides")

	// ErrInvalidConfig возвращается, если значения не прошли проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server" envconfig:"SERVER"`
	Logs         LogsConfig         `toml:"logs" envconfig:"LOGS"`
	Metrics      MetricsConfig      `toml:"metrics" envconfig:"METRICS"`
	Webhooks     WebhooksConfig     `toml:"webhooks" envconfig:"WEBHOOKS"`
	Venue        VenueConfig        `toml:"venue" envconfig:"VENUE"`
	Submission   SubmissionConfig   `toml:"submission" envconfig:"SUBMISSION"`
	Storage      StorageConfig      `toml:"storage" envconfig:"STORAGE"`
	Redis        RedisConfig        `toml:"redis" envconfig:"REDIS"`
	RabbitMQ     RabbitMQConfig     `toml:"rabbitmq" envconfig:"RABBITMQ"`
	Connectivity ConnectivityConfig `toml:"connectivity" envconfig:"CONNECTIVITY"`
	Sessions     SessionsConfig     `toml:"sessions" envconfig:"SESSIONS"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

type LogsConfig struct {
	Level string `toml:"level" split_words:"true"`
	File  string `toml:"file" split_words:"true"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

// WebhooksConfig адреса внешних webhook'ов, Timeout в секундах
type WebhooksConfig struct {
	AvailabilityURL string `toml:"availability_url" split_words:"true"`
	PanelURL        string `toml:"panel_url" split_words:"true"`
	SpotsURL        string `toml:"spots_url" split_words:"true"`
	BookingURL      string `toml:"booking_url" split_words:"true"`
	Timeout         int    `toml:"timeout" split_words:"true"`
}

// VenueConfig правила заведения
type VenueConfig struct {
	TimeZone          string `toml:"time_zone" split_words:"true"`
	SameDayCutoffHour int    `toml:"same_day_cutoff_hour" split_words:"true"`
	PanelMinPartySize int    `toml:"panel_min_party_size" split_words:"true"`
	DebounceMs        int    `toml:"debounce_ms" split_words:"true"`
}

// SubmissionConfig повторы отправки
type SubmissionConfig struct {
	MaxRetries   int `toml:"max_retries" split_words:"true"`
	RetryDelayMs int `toml:"retry_delay_ms" split_words:"true"`
}

// StorageConfig driver: sqlite (по умолчанию) или postgres
type StorageConfig struct {
	Driver          string `toml:"driver" split_words:"true"`
	DSN             string `toml:"dsn" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"`
	BusyTimeoutMs   int    `toml:"busy_timeout_ms" split_words:"true"`
}

// RedisConfig распределенная блокировка прохода по очереди; пустой Addr - выключено
type RedisConfig struct {
	Addr       string `toml:"addr" split_words:"true"`
	Password   string `toml:"password" split_words:"true"`
	DB         int    `toml:"db" split_words:"true"`
	LockKey    string `toml:"lock_key" split_words:"true"`
	LockTTLSec int    `toml:"lock_ttl" split_words:"true"`
}

// RabbitMQConfig события о бронированиях; пустой URL - выключено
type RabbitMQConfig struct {
	URL      string `toml:"url" split_words:"true"`
	Exchange string `toml:"exchange" split_words:"true"`
}

// ConnectivityConfig проверка доступности webhook'а бронирования, значения в секундах
type ConnectivityConfig struct {
	Enabled  bool `toml:"enabled" split_words:"true"`
	Interval int  `toml:"interval" split_words:"true"`
	Timeout  int  `toml:"timeout" split_words:"true"`
}

// SessionsConfig выгрузка простаивающих сессий формы, значения в секундах; IdleTTL 0 - не выгружать
type SessionsConfig struct {
	IdleTTL       int `toml:"idle_ttl" split_words:"true"`
	SweepInterval int `toml:"sweep_interval" split_words:"true"`
}

// Load читает конфигурацию из TOML файла и применяет переменные окружения MERCEARIA_*
// Отсутствующий файл не является ошибкой: используются значения по умолчанию и окружение
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvOverride, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "mercearia_reservation_service",
		},
		Webhooks: WebhooksConfig{Timeout: 10},
		Venue: VenueConfig{
			TimeZone:          "America/Sao_Paulo",
			SameDayCutoffHour: 18,
			PanelMinPartySize: 10,
			DebounceMs:        500,
		},
		Submission: SubmissionConfig{
			MaxRetries:   3,
			RetryDelayMs: 1000,
		},
		Storage: StorageConfig{
			Driver:        "sqlite",
			DSN:           "data/mercearia.db",
			BusyTimeoutMs: 5000,
		},
		Redis: RedisConfig{
			LockKey:    "mercearia:offline-queue:drain",
			LockTTLSec: 300,
		},
		RabbitMQ: RabbitMQConfig{Exchange: "mercearia.reservations"},
		Connectivity: ConnectivityConfig{
			Enabled:  true,
			Interval: 30,
			Timeout:  5,
		},
		Sessions: SessionsConfig{
			IdleTTL:       1800,
			SweepInterval: 60,
		},
	}
}

// applyDefaults заменяет нулевые значения, оставшиеся после файла и окружения
func (c *Config) applyDefaults() {
	def := Default()

	if c.Webhooks.Timeout == 0 {
		c.Webhooks.Timeout = def.Webhooks.Timeout
	}
	if c.Venue.TimeZone == "" {
		c.Venue.TimeZone = def.Venue.TimeZone
	}
	if c.Venue.DebounceMs == 0 {
		c.Venue.DebounceMs = def.Venue.DebounceMs
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = def.Storage.Driver
	}
	if c.Storage.Driver == "sqlite" && c.Storage.DSN == "" {
		c.Storage.DSN = def.Storage.DSN
	}
	if c.Redis.LockKey == "" {
		c.Redis.LockKey = def.Redis.LockKey
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = def.RabbitMQ.Exchange
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = def.Metrics.Path
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	case c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: server timeouts must be positive", ErrInvalidConfig)
	case c.Webhooks.Timeout <= 0:
		return fmt.Errorf("%w: webhooks.timeout must be positive", ErrInvalidConfig)
	case c.Submission.MaxRetries < 0:
		return fmt.Errorf("%w: submission.max_retries must not be negative", ErrInvalidConfig)
	case c.Submission.RetryDelayMs < 0:
		return fmt.Errorf("%w: submission.retry_delay_ms must not be negative", ErrInvalidConfig)
	case c.Venue.SameDayCutoffHour < 0 || c.Venue.SameDayCutoffHour > 24:
		return fmt.Errorf("%w: venue.same_day_cutoff_hour %d", ErrInvalidConfig, c.Venue.SameDayCutoffHour)
	case c.Venue.PanelMinPartySize <= 0:
		return fmt.Errorf("%w: venue.panel_min_party_size must be positive", ErrInvalidConfig)
	case c.Venue.DebounceMs < 0:
		return fmt.Errorf("%w: venue.debounce_ms must not be negative", ErrInvalidConfig)
	case c.Storage.Driver != "sqlite" && c.Storage.Driver != "postgres":
		return fmt.Errorf("%w: storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	case c.Storage.DSN == "":
		return fmt.Errorf("%w: storage.dsn is required", ErrInvalidConfig)
	case c.Connectivity.Enabled && (c.Connectivity.Interval <= 0 || c.Connectivity.Timeout <= 0):
		return fmt.Errorf("%w: connectivity interval and timeout must be positive", ErrInvalidConfig)
	case c.Sessions.IdleTTL < 0:
		return fmt.Errorf("%w: sessions.idle_ttl must not be negative", ErrInvalidConfig)
	case c.Sessions.IdleTTL > 0 && c.Sessions.SweepInterval <= 0:
		return fmt.Errorf("%w: sessions.sweep_interval must be positive", ErrInvalidConfig)
	}

	if _, err := time.LoadLocation(c.Venue.TimeZone); err != nil {
		return fmt.Errorf("%w: venue.time_zone %q: %v", ErrInvalidConfig, c.Venue.TimeZone, err)
	}
	return nil
}

// Location временная зона заведения
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Venue.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Seconds переводит значение конфигурации в секундах в time.Duration
func Seconds(v int) time.Duration {
	return time.Duration(v) * time.Second
}

// Millis переводит значение конфигурации в миллисекундах в time.Duration
func Millis(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
