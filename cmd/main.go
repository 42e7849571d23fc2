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

	bookSessionHandler "github.com/younesAM01/StayFit-BookingService/internal/api/handlers/book_session"
	cancelSessionHandler "github.com/younesAM01/StayFit-BookingService/internal/api/handlers/cancel_session"
	completeSessionHandler "github.com/younesAM01/StayFit-BookingService/internal/api/handlers/complete_session"
	deleteSessionHandler "github.com/younesAM01/StayFit-BookingService/internal/api/handlers/delete_session"
	getClientPacksHandler "github.com/younesAM01/StayFit-BookingService/internal/api/handlers/get_client_packs"
	getClientSessionsHandler "github.com/younesAM01/StayFit-BookingService/internal/api/handlers/get_client_sessions"
	getCoachSessionsHandler "github.com/younesAM01/StayFit-BookingService/internal/api/handlers/get_coach_sessions"
	getPackHandler "github.com/younesAM01/StayFit-BookingService/internal/api/handlers/get_pack"
	getSessionHandler "github.com/younesAM01/StayFit-BookingService/internal/api/handlers/get_session"
	getWeekAvailabilityHandler "github.com/younesAM01/StayFit-BookingService/internal/api/handlers/get_week_availability"
	rescheduleSessionHandler "github.com/younesAM01/StayFit-BookingService/internal/api/handlers/reschedule_session"
	"github.com/younesAM01/StayFit-BookingService/internal/api/middleware"
	"github.com/younesAM01/StayFit-BookingService/internal/config"
	clientPackRepo "github.com/younesAM01/StayFit-BookingService/internal/infra/storage/clientpack"
	sessionRepo "github.com/younesAM01/StayFit-BookingService/internal/infra/storage/session"
	rosterServiceClient "github.com/younesAM01/StayFit-BookingService/internal/integrations/rosterservice"
	packsService "github.com/younesAM01/StayFit-BookingService/internal/service/packs"
	sessionsService "github.com/younesAM01/StayFit-BookingService/internal/service/sessions"
	bookSessionUC "github.com/younesAM01/StayFit-BookingService/internal/usecase/book_session"
	getWeekAvailabilityUC "github.com/younesAM01/StayFit-BookingService/internal/usecase/get_week_availability"
	rescheduleSessionUC "github.com/younesAM01/StayFit-BookingService/internal/usecase/reschedule_session"
	"github.com/younesAM01/StayFit-BookingService/pkg/dbmetrics"
	"github.com/younesAM01/StayFit-BookingService/pkg/logger"
	"github.com/younesAM01/StayFit-BookingService/pkg/metrics"
	"github.com/younesAM01/StayFit-BookingService/pkg/simpletxmanager"
	"github.com/younesAM01/StayFit-BookingService/pkg/txmanager"
)

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

	log.Info("Starting StayFit-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиента RosterService
	rosterClient := rosterServiceClient.NewClient(
		cfg.RosterService.URL,
		time.Duration(cfg.RosterService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (RosterService=%s timeout=%ds)",
		cfg.RosterService.URL, cfg.RosterService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		sessionRepository *sessionRepo.Repository
		packRepository    *clientPackRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		packRepository = clientPackRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
		packRepository = clientPackRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(
		sessionRepository,
		packRepository,
		txMgr,
		log,
	)
	packSvc := packsService.NewService(
		packRepository,
		log,
	)

	// Инициализируем use cases
	bookSessionUseCase := bookSessionUC.NewUseCase(
		sessionRepository,
		packRepository,
		rosterClient,
		txMgr,
		log,
	)

	getWeekAvailabilityUseCase := getWeekAvailabilityUC.NewUseCase(
		sessionRepository,
		rosterClient,
		log,
	)

	rescheduleSessionUseCase := rescheduleSessionUC.NewUseCase(
		sessionRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	bookSession := bookSessionHandler.NewHandler(bookSessionUseCase, log)
	getWeekAvailability := getWeekAvailabilityHandler.NewHandler(getWeekAvailabilityUseCase, log)
	rescheduleSession := rescheduleSessionHandler.NewHandler(rescheduleSessionUseCase, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	completeSession := completeSessionHandler.NewHandler(sessionSvc, log)
	cancelSession := cancelSessionHandler.NewHandler(sessionSvc, log)
	deleteSession := deleteSessionHandler.NewHandler(sessionSvc, log)
	getClientSessions := getClientSessionsHandler.NewHandler(sessionSvc, log)
	getCoachSessions := getCoachSessionsHandler.NewHandler(sessionSvc, log)
	getClientPacks := getClientPacksHandler.NewHandler(packSvc, log)
	getPack := getPackHandler.NewHandler(packSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Недельная сетка доступности тренера
	api.HandleFunc("/coaches/{coachId}/availability",
		getWeekAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Сессии ---
	// Бронирование сессии
	protected.HandleFunc("/sessions", bookSession.Handle).Methods(http.MethodPost)

	// Получение сессии по ID
	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Завершение сессии
	protected.HandleFunc("/sessions/{sessionId}/complete", completeSession.Handle).Methods(http.MethodPatch)

	// Отмена сессии (с возвратом занятия в пакет)
	protected.HandleFunc("/sessions/{sessionId}/cancel", cancelSession.Handle).Methods(http.MethodPatch)

	// Перенос сессии на другой слот
	protected.HandleFunc("/sessions/{sessionId}/reschedule", rescheduleSession.Handle).Methods(http.MethodPatch)

	// Удаление сессии (административная коррекция)
	protected.HandleFunc("/sessions/{sessionId}", deleteSession.Handle).Methods(http.MethodDelete)

	// --- Клиенты ---
	// История сессий клиента
	protected.HandleFunc("/clients/{clientId}/sessions", getClientSessions.Handle).Methods(http.MethodGet)

	// Пакеты занятий клиента
	protected.HandleFunc("/clients/{clientId}/packs", getClientPacks.Handle).Methods(http.MethodGet)

	// --- Пакеты ---
	// Получение пакета по ID
	protected.HandleFunc("/packs/{packId}", getPack.Handle).Methods(http.MethodGet)

	// --- Тренеры ---
	// Календарь тренера с фильтрацией
	protected.HandleFunc("/coaches/{coachId}/sessions", getCoachSessions.Handle).Methods(http.MethodGet)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
