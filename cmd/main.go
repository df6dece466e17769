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

	changeDateHandler "github.com/avdeez/Shop-SchedulerService/internal/api/handlers/change_date"
	confirmSessionHandler "github.com/avdeez/Shop-SchedulerService/internal/api/handlers/confirm_session"
	createReservationHandler "github.com/avdeez/Shop-SchedulerService/internal/api/handlers/create_reservation"
	finishSessionHandler "github.com/avdeez/Shop-SchedulerService/internal/api/handlers/finish_session"
	getSessionHandler "github.com/avdeez/Shop-SchedulerService/internal/api/handlers/get_session"
	getSlotGridHandler "github.com/avdeez/Shop-SchedulerService/internal/api/handlers/get_slot_grid"
	pickSlotHandler "github.com/avdeez/Shop-SchedulerService/internal/api/handlers/pick_slot"
	requestOTPHandler "github.com/avdeez/Shop-SchedulerService/internal/api/handlers/request_otp"
	sessionServicesHandler "github.com/avdeez/Shop-SchedulerService/internal/api/handlers/session_services"
	verifyOTPHandler "github.com/avdeez/Shop-SchedulerService/internal/api/handlers/verify_otp"
	"github.com/avdeez/Shop-SchedulerService/internal/api/middleware"
	"github.com/avdeez/Shop-SchedulerService/internal/config"
	sessionRepo "github.com/avdeez/Shop-SchedulerService/internal/infra/storage/session"
	shopAPIClient "github.com/avdeez/Shop-SchedulerService/internal/integrations/shopapi"
	"github.com/avdeez/Shop-SchedulerService/internal/otp"
	sessionsService "github.com/avdeez/Shop-SchedulerService/internal/service/sessions"
	createReservationUC "github.com/avdeez/Shop-SchedulerService/internal/usecase/create_reservation"
	getSlotGridUC "github.com/avdeez/Shop-SchedulerService/internal/usecase/get_slot_grid"
	startEditSessionUC "github.com/avdeez/Shop-SchedulerService/internal/usecase/start_edit_session"
	"github.com/avdeez/Shop-SchedulerService/pkg/dbmetrics"
	"github.com/avdeez/Shop-SchedulerService/pkg/logger"
	"github.com/avdeez/Shop-SchedulerService/pkg/metrics"
	"github.com/avdeez/Shop-SchedulerService/pkg/simpletxmanager"
	"github.com/avdeez/Shop-SchedulerService/pkg/txmanager"
)

// staleSessionMaxAge сессии старше этого возраста вычищаются из базы
const staleSessionMaxAge = 24 * time.Hour

// cleanupInterval период фоновой чистки сессий
const cleanupInterval = time.Hour

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

	log.Info("Starting Shop-SchedulerService...")
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

	// Инициализируем клиент бэкенда магазинов
	shopClient := shopAPIClient.NewClient(
		cfg.ShopService.URL,
		time.Duration(cfg.ShopService.Timeout)*time.Second,
		log,
	)
	log.Info("Shop service client initialized (url=%s, timeout=%ds)",
		cfg.ShopService.URL, cfg.ShopService.Timeout)

	// OTP gate: кулдаун повторной отправки кода и реестр
	// подтвержденных телефонов
	otpGate := otp.NewGate(cfg.OTP.ResendCooldownSeconds, cfg.OTP.VerifiedTTLMinutes, otp.RealTimeProvider{})

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		sessionRepository *sessionRepo.Repository
		txMgr             sessionsService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(
		sessionRepository,
		shopClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	startEditSessionUseCase := startEditSessionUC.NewUseCase(
		sessionRepository,
		shopClient,
		otpGate,
		log,
	)

	getSlotGridUseCase := getSlotGridUC.NewUseCase(
		sessionRepository,
		shopClient,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		shopClient,
		otpGate,
		log,
	)

	// Инициализируем handlers
	getSlotGrid := getSlotGridHandler.NewHandler(getSlotGridUseCase, log)
	requestOTP := requestOTPHandler.NewHandler(shopClient, otpGate, cfg.OTP.ResendCooldownSeconds, log)
	verifyOTP := verifyOTPHandler.NewHandler(startEditSessionUseCase, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	pickSlot := pickSlotHandler.NewHandler(sessionSvc, log)
	sessionServices := sessionServicesHandler.NewHandler(sessionSvc, log)
	changeDate := changeDateHandler.NewHandler(sessionSvc, log)
	confirmSession := confirmSessionHandler.NewHandler(sessionSvc, log)
	finishSession := finishSessionHandler.NewHandler(sessionSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)

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

	// Сетка слотов магазина на дату
	api.HandleFunc("/shops/{shopUsername}/slots", getSlotGrid.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Client-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- OTP ---
	// Запрос кода подтверждения
	protected.HandleFunc("/otp/request", requestOTP.Handle).Methods(http.MethodPost)

	// Проверка кода и открытие сессии редактирования
	protected.HandleFunc("/otp/verify", verifyOTP.Handle).Methods(http.MethodPost)

	// --- Сессии редактирования заявки ---
	// Текущее состояние сессии
	protected.HandleFunc("/sessions/{token}", getSession.Handle).Methods(http.MethodGet)

	// Выбор слота в сетке
	protected.HandleFunc("/sessions/{token}/slot", pickSlot.Handle).Methods(http.MethodPost)

	// Управление списком услуг
	protected.HandleFunc("/sessions/{token}/services", sessionServices.HandleAdd).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{token}/services/{serviceId}", sessionServices.HandleRemove).Methods(http.MethodDelete)
	protected.HandleFunc("/sessions/{token}/services/{serviceId}", sessionServices.HandleSetQuantity).Methods(http.MethodPatch)

	// Смена даты
	protected.HandleFunc("/sessions/{token}/date", changeDate.Handle).Methods(http.MethodPost)

	// Подтверждение и отправка изменений
	protected.HandleFunc("/sessions/{token}/confirm", confirmSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{token}/submit", finishSession.Handle).Methods(http.MethodPost)

	// --- Новая заявка ---
	protected.HandleFunc("/shops/{shopUsername}/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Фоновые задачи: тикер OTP-отсчетов и чистка устаревших сессий
	stopBackgroundCh := make(chan struct{})
	go runOTPTicker(otpGate, stopBackgroundCh)
	go runSessionCleanup(sessionSvc, log, stopBackgroundCh)

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

	close(stopBackgroundCh)

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

	log.Info("Server stopped")
}

// runOTPTicker продвигает отсчеты кулдауна раз в секунду
func runOTPTicker(gate *otp.Gate, stopCh <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			gate.Tick()
		case <-stopCh:
			return
		}
	}
}

// runSessionCleanup периодически удаляет заброшенные сессии
func runSessionCleanup(svc *sessionsService.Service, log *logger.Logger, stopCh <-chan struct{}) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := svc.CleanupStale(context.Background(), staleSessionMaxAge, time.Now()); err != nil {
				log.Error("Session cleanup failed: %v", err)
			}
		case <-stopCh:
			return
		}
	}
}
