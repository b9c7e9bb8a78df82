package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createReservationHandler "github.com/m04kA/Mercearia-ReservationService/internal/api/handlers/create_reservation"
	deleteDraftHandler "github.com/m04kA/Mercearia-ReservationService/internal/api/handlers/delete_draft"
	drainOfflineQueueHandler "github.com/m04kA/Mercearia-ReservationService/internal/api/handlers/drain_offline_queue"
	getAvailabilityHandler "github.com/m04kA/Mercearia-ReservationService/internal/api/handlers/get_availability"
	getAvailabilityConfigHandler "github.com/m04kA/Mercearia-ReservationService/internal/api/handlers/get_availability_config"
	getDraftHandler "github.com/m04kA/Mercearia-ReservationService/internal/api/handlers/get_draft"
	getOfflineQueueHandler "github.com/m04kA/Mercearia-ReservationService/internal/api/handlers/get_offline_queue"
	getPanelEligibilityHandler "github.com/m04kA/Mercearia-ReservationService/internal/api/handlers/get_panel_eligibility"
	getSpotsHandler "github.com/m04kA/Mercearia-ReservationService/internal/api/handlers/get_spots"
	healthHandler "github.com/m04kA/Mercearia-ReservationService/internal/api/handlers/health"
	saveDraftHandler "github.com/m04kA/Mercearia-ReservationService/internal/api/handlers/save_draft"
	sessionsHandler "github.com/m04kA/Mercearia-ReservationService/internal/api/handlers/sessions"
	"github.com/m04kA/Mercearia-ReservationService/internal/api/middleware"
	"github.com/m04kA/Mercearia-ReservationService/internal/config"
	"github.com/m04kA/Mercearia-ReservationService/internal/connectivity"
	"github.com/m04kA/Mercearia-ReservationService/internal/infra/events"
	"github.com/m04kA/Mercearia-ReservationService/internal/infra/lock"
	"github.com/m04kA/Mercearia-ReservationService/internal/infra/storage/database"
	draftsRepo "github.com/m04kA/Mercearia-ReservationService/internal/infra/storage/drafts"
	offlineQueueRepo "github.com/m04kA/Mercearia-ReservationService/internal/infra/storage/offlinequeue"
	"github.com/m04kA/Mercearia-ReservationService/internal/integrations/webhooks"
	"github.com/m04kA/Mercearia-ReservationService/internal/session"
	checkSpotsUC "github.com/m04kA/Mercearia-ReservationService/internal/usecase/check_spots"
	evaluatePanelUC "github.com/m04kA/Mercearia-ReservationService/internal/usecase/evaluate_panel"
	resolveAvailabilityUC "github.com/m04kA/Mercearia-ReservationService/internal/usecase/resolve_availability"
	submitReservationUC "github.com/m04kA/Mercearia-ReservationService/internal/usecase/submit_reservation"
	"github.com/m04kA/Mercearia-ReservationService/internal/validation"
	"github.com/m04kA/Mercearia-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Mercearia-ReservationService/pkg/logger"
	"github.com/m04kA/Mercearia-ReservationService/pkg/metrics"
	"github.com/m04kA/Mercearia-ReservationService/pkg/txmanager"
)

func main() {
	// .env необязателен, переменные окружения имеют приоритет над ним
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Mercearia-ReservationService...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к локальному хранилищу
	db, dialect, err := database.Open(ctx, database.Config{
		Driver:          cfg.Storage.Driver,
		DSN:             cfg.Storage.DSN,
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.MaxIdleConns,
		ConnMaxLifetime: config.Seconds(cfg.Storage.ConnMaxLifetime),
		BusyTimeout:     config.Millis(cfg.Storage.BusyTimeoutMs),
	})
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, dialect); err != nil {
		log.Fatal("Failed to migrate storage: %v", err)
	}
	log.Info("Storage ready (driver=%s)", cfg.Storage.Driver)

	// Репозитории (с метриками или без)
	var (
		queueRepository  *offlineQueueRepo.Repository
		draftsRepository *draftsRepo.Repository
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		txMgr := txmanager.NewTransactionManager(wrappedDB)
		queueRepository = offlineQueueRepo.NewRepository(wrappedDB, txMgr, dialect)
		draftsRepository = draftsRepo.NewRepository(wrappedDB, dialect)
		log.Info("Database metrics collection started")
	} else {
		txMgr := txmanager.NewTransactionManager(txmanager.SQLDB{DB: db})
		queueRepository = offlineQueueRepo.NewRepository(db, txMgr, dialect)
		draftsRepository = draftsRepo.NewRepository(db, dialect)
	}

	// Клиент webhook'ов
	endpoints := webhooks.Endpoints{
		AvailabilityURL: cfg.Webhooks.AvailabilityURL,
		PanelURL:        cfg.Webhooks.PanelURL,
		SpotsURL:        cfg.Webhooks.SpotsURL,
		BookingURL:      cfg.Webhooks.BookingURL,
	}
	var webhookClient *webhooks.Client
	if cfg.Metrics.Enabled {
		webhookClient = webhooks.NewClient(endpoints, config.Seconds(cfg.Webhooks.Timeout), metricsCollector, log)
	} else {
		webhookClient = webhooks.NewClient(endpoints, config.Seconds(cfg.Webhooks.Timeout), nil, log)
	}
	log.Info("Webhook client initialized (booking=%s, timeout=%ds)", cfg.Webhooks.BookingURL, cfg.Webhooks.Timeout)

	// Use cases
	location := cfg.Location()

	resolveAvailabilityUseCase := resolveAvailabilityUC.NewUseCase(
		webhookClient,
		resolveAvailabilityUC.Resolver{CutoffHour: cfg.Venue.SameDayCutoffHour},
		location,
		log,
	)
	evaluatePanelUseCase := evaluatePanelUC.NewUseCase(
		webhookClient,
		evaluatePanelUC.Evaluator{MinPartySize: cfg.Venue.PanelMinPartySize},
		log,
	)
	checkSpotsUseCase := checkSpotsUC.NewUseCase(webhookClient, log)
	submitReservationUseCase := submitReservationUC.NewUseCase(
		webhookClient,
		queueRepository,
		submitReservationUC.Options{
			MaxRetries: cfg.Submission.MaxRetries,
			RetryDelay: config.Millis(cfg.Submission.RetryDelayMs),
		},
		log,
	)
	if cfg.Metrics.Enabled {
		submitReservationUseCase.WithMetrics(metricsCollector)
	}

	// Распределенная блокировка прохода по очереди (если настроен Redis)
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		submitReservationUseCase.WithDrainLocker(
			lock.NewRedisLocker(redisClient, cfg.Redis.LockKey, config.Seconds(cfg.Redis.LockTTLSec), log),
		)
		log.Info("Redis drain lock enabled (addr=%s, key=%s)", cfg.Redis.Addr, cfg.Redis.LockKey)
	}

	// События о бронированиях (если настроен RabbitMQ)
	if cfg.RabbitMQ.URL != "" {
		publisher, err := events.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Warn("RabbitMQ unavailable, reservation events disabled: %v", err)
		} else {
			defer publisher.Close()
			submitReservationUseCase.WithEventPublisher(publisher)
			log.Info("Reservation events enabled (exchange=%s)", cfg.RabbitMQ.Exchange)
		}
	}

	// Проверка сети: переход offline -> online запускает проход по очереди
	drain := func() {
		drainCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		defer cancel()
		if _, err := submitReservationUseCase.Drain(drainCtx); err != nil {
			log.Error("Offline queue drain failed: %v", err)
		}
	}

	var monitor *connectivity.Monitor
	if cfg.Connectivity.Enabled && cfg.Webhooks.BookingURL != "" {
		monitor, err = connectivity.NewMonitor(
			cfg.Webhooks.BookingURL,
			config.Seconds(cfg.Connectivity.Interval),
			config.Seconds(cfg.Connectivity.Timeout),
			log,
		)
		if err != nil {
			log.Fatal("Failed to create connectivity monitor: %v", err)
		}
		submitReservationUseCase.WithConnectivityProbe(monitor)
		monitor.OnOnline(drain)
		go monitor.Run(ctx)
		log.Info("Connectivity monitor started (interval=%ds)", cfg.Connectivity.Interval)
	}

	// Проход по очереди при старте, если сеть есть
	if monitor == nil || monitor.Check(ctx) {
		go drain()
	}

	// Сессии формы
	validator := validation.New(location)
	gateRules := session.Rules{PanelMinPartySize: cfg.Venue.PanelMinPartySize}
	sessionManager := session.NewManager(session.Deps{
		Availability: resolveAvailabilityUseCase,
		Panel:        evaluatePanelUseCase,
		Spots:        checkSpotsUseCase,
		Submitter:    submitReservationUseCase,
		Drafts:       draftsRepository,
		Validator:    validator,
		Logger:       log,
	}, session.Options{
		Debounce: config.Millis(cfg.Venue.DebounceMs),
		Rules:    gateRules,
	}).WithIdleTTL(config.Seconds(cfg.Sessions.IdleTTL))
	defer sessionManager.CloseAll()

	go sessionManager.RunEvictor(ctx, config.Seconds(cfg.Sessions.SweepInterval))

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(resolveAvailabilityUseCase, log)
	getAvailabilityConfig := getAvailabilityConfigHandler.NewHandler(resolveAvailabilityUseCase, log)
	getPanelEligibility := getPanelEligibilityHandler.NewHandler(evaluatePanelUseCase, log)
	getSpots := getSpotsHandler.NewHandler(checkSpotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(
		validator,
		resolveAvailabilityUseCase,
		checkSpotsUseCase,
		evaluatePanelUseCase,
		submitReservationUseCase,
		log,
	).WithRules(gateRules)
	getOfflineQueue := getOfflineQueueHandler.NewHandler(submitReservationUseCase, log)
	drainOfflineQueue := drainOfflineQueueHandler.NewHandler(submitReservationUseCase, log)
	getDraft := getDraftHandler.NewHandler(draftsRepository, log)
	saveDraft := saveDraftHandler.NewHandler(draftsRepository, log)
	deleteDraft := deleteDraftHandler.NewHandler(draftsRepository, log)
	sessions := sessionsHandler.NewHandler(sessionManager, log)

	var probe healthHandler.OnlineChecker
	if monitor != nil {
		probe = monitor
	}
	health := healthHandler.NewHandler(db, probe)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/config", getAvailabilityConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/panel-eligibility", getPanelEligibility.Handle).Methods(http.MethodGet)
	api.HandleFunc("/spots", getSpots.Handle).Methods(http.MethodGet)

	// --- Бронирования и офлайн очередь ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/offline-queue", getOfflineQueue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/offline-queue/drain", drainOfflineQueue.Handle).Methods(http.MethodPost)

	// --- Черновики ---
	api.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}", saveDraft.Handle).Methods(http.MethodPut)
	api.HandleFunc("/drafts/{draftId}", deleteDraft.Handle).Methods(http.MethodDelete)

	// --- Сессии формы ---
	api.HandleFunc("/sessions", sessions.Open).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", sessions.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", sessions.Close).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/draft", sessions.UpdateDraft).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/step", sessions.Step).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/submit", sessions.Submit).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  config.Seconds(cfg.Server.ReadTimeout),
		WriteTimeout: config.Seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Seconds(cfg.Server.IdleTimeout),
	}

	go func() {
		log.Info("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Seconds(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
