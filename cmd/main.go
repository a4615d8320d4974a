package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkAvailabilityHandler "github.com/m04kA/SMC-AdPlacementService/internal/api/handlers/check_availability"
	createSubscriptionHandler "github.com/m04kA/SMC-AdPlacementService/internal/api/handlers/create_subscription"
	getAssetSubscriptionsHandler "github.com/m04kA/SMC-AdPlacementService/internal/api/handlers/get_asset_subscriptions"
	getCustomerSubscriptionsHandler "github.com/m04kA/SMC-AdPlacementService/internal/api/handlers/get_customer_subscriptions"
	getSubscriptionHandler "github.com/m04kA/SMC-AdPlacementService/internal/api/handlers/get_subscription"
	quotePriceHandler "github.com/m04kA/SMC-AdPlacementService/internal/api/handlers/quote_price"
	transitionSubscriptionHandler "github.com/m04kA/SMC-AdPlacementService/internal/api/handlers/transition_subscription"
	updateSubscriptionHandler "github.com/m04kA/SMC-AdPlacementService/internal/api/handlers/update_subscription"
	"github.com/m04kA/SMC-AdPlacementService/internal/api/middleware"
	"github.com/m04kA/SMC-AdPlacementService/internal/availability"
	"github.com/m04kA/SMC-AdPlacementService/internal/config"
	contractRepo "github.com/m04kA/SMC-AdPlacementService/internal/infra/storage/contract"
	subscriptionRepo "github.com/m04kA/SMC-AdPlacementService/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-AdPlacementService/internal/integrations/auditlog"
	inventoryClient "github.com/m04kA/SMC-AdPlacementService/internal/integrations/inventory"
	partnerServiceClient "github.com/m04kA/SMC-AdPlacementService/internal/integrations/partnerservice"
	"github.com/m04kA/SMC-AdPlacementService/internal/lifecycle"
	"github.com/m04kA/SMC-AdPlacementService/internal/pricing"
	subscriptionsService "github.com/m04kA/SMC-AdPlacementService/internal/service/subscriptions"
	checkAvailabilityUC "github.com/m04kA/SMC-AdPlacementService/internal/usecase/check_availability"
	createSubscriptionUC "github.com/m04kA/SMC-AdPlacementService/internal/usecase/create_subscription"
	quotePriceUC "github.com/m04kA/SMC-AdPlacementService/internal/usecase/quote_price"
	transitionSubscriptionUC "github.com/m04kA/SMC-AdPlacementService/internal/usecase/transition_subscription"
	updateSubscriptionUC "github.com/m04kA/SMC-AdPlacementService/internal/usecase/update_subscription"
	"github.com/m04kA/SMC-AdPlacementService/pkg/assetlock"
	"github.com/m04kA/SMC-AdPlacementService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AdPlacementService/pkg/logger"
	"github.com/m04kA/SMC-AdPlacementService/pkg/metrics"
	"github.com/m04kA/SMC-AdPlacementService/pkg/txmanager"
)

// assetLocker общий интерфейс Redis и no-op блокировок
type assetLocker interface {
	Lock(ctx context.Context, assetIDs ...int64) (assetlock.Unlock, error)
}

// noteAppender общий интерфейс RabbitMQ и no-op журнала заметок
type noteAppender interface {
	AppendNote(ctx context.Context, note lifecycle.Note) error
}

func main() {
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

	log.Info("Starting SMC-AdPlacementService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка работает как прозрачный прокси
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Блокировки носителей
	var locker assetLocker = assetlock.NoopLocker{}
	if cfg.Redis.Enabled {
		redisClient, err := config.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, asset locks disabled: %v", err)
		} else {
			defer redisClient.Close()
			locker = assetlock.NewRedisLocker(redisClient, cfg.Redis.LockTTL())
			log.Info("Asset locks enabled (redis=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.LockTTL())
		}
	}

	// Журнал заметок
	var auditor noteAppender = auditlog.Nop{}
	if cfg.RabbitMQ.Enabled {
		publisher := auditlog.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, log)
		defer publisher.Close()
		auditor = publisher
		log.Info("Audit notes are published to queue %s", cfg.RabbitMQ.Queue)
	}

	// Инициализируем интеграционных клиентов
	inventory := inventoryClient.NewClient(
		cfg.InventoryService.URL,
		time.Duration(cfg.InventoryService.Timeout)*time.Second,
		log,
	)
	partnerClient := partnerServiceClient.NewClient(
		cfg.PartnerService.URL,
		time.Duration(cfg.PartnerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (InventoryService=%s timeout=%ds, PartnerService=%s timeout=%ds)",
		cfg.InventoryService.URL, cfg.InventoryService.Timeout, cfg.PartnerService.URL, cfg.PartnerService.Timeout)

	// Инициализируем репозитории
	subscriptionRepository := subscriptionRepo.NewRepository(wrappedDB)
	contractRepository := contractRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Доменные компоненты
	prestige, err := cfg.Pricing.Prestige()
	if err != nil {
		log.Fatal("Invalid pricing configuration: %v", err)
	}
	pricingEngine := pricing.NewEngine(prestige)
	validator := availability.NewValidator()
	machine := lifecycle.NewMachine(validator)
	precision := cfg.Currency.CurrencyPrecision()

	// Инициализируем сервисы
	subscriptionSvc := subscriptionsService.NewService(
		subscriptionRepository,
		contractRepository,
		log,
	)

	// Инициализируем use cases
	createSubscriptionUseCase := createSubscriptionUC.NewUseCase(
		subscriptionRepository,
		contractRepository,
		inventory,
		partnerClient,
		pricingEngine,
		log,
	)

	updateSubscriptionUseCase := updateSubscriptionUC.NewUseCase(
		subscriptionRepository,
		contractRepository,
		inventory,
		subscriptionSvc,
		machine,
		pricingEngine,
		locker,
		txMgr,
		metricsCollector,
		log,
	)

	transitionSubscriptionUseCase := transitionSubscriptionUC.NewUseCase(
		subscriptionRepository,
		inventory,
		subscriptionSvc,
		machine,
		locker,
		txMgr,
		auditor,
		metricsCollector,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		subscriptionRepository,
		inventory,
		subscriptionSvc,
		validator,
		log,
	)

	quotePriceUseCase := quotePriceUC.NewUseCase(inventory, pricingEngine, log)

	// Инициализируем handlers
	createSubscription := createSubscriptionHandler.NewHandler(createSubscriptionUseCase, precision, log)
	getSubscription := getSubscriptionHandler.NewHandler(subscriptionSvc, precision, log)
	updateSubscription := updateSubscriptionHandler.NewHandler(updateSubscriptionUseCase, precision, log)
	transitionSubscription := transitionSubscriptionHandler.NewHandler(transitionSubscriptionUseCase, precision, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getAssetSubscriptions := getAssetSubscriptionsHandler.NewHandler(subscriptionSvc, precision, log)
	getCustomerSubscriptions := getCustomerSubscriptionsHandler.NewHandler(subscriptionSvc, precision, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, precision, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчёт стоимости без создания подписки
	api.HandleFunc("/quotes", quotePrice.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Подписки ---
	protected.HandleFunc("/subscriptions", createSubscription.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/subscriptions/{subscriptionId}", getSubscription.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/subscriptions/{subscriptionId}", updateSubscription.Handle).Methods(http.MethodPatch)

	// Переходы жизненного цикла: request-approval, confirm, activate, pause, ...
	protected.HandleFunc("/subscriptions/{subscriptionId}/transitions/{operation}",
		transitionSubscription.Handle).Methods(http.MethodPost)

	// Проверка доступности носителя для подписки
	protected.HandleFunc("/subscriptions/{subscriptionId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// --- Выборки ---
	protected.HandleFunc("/assets/{assetId}/subscriptions", getAssetSubscriptions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}/subscriptions", getCustomerSubscriptions.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
