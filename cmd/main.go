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

	cancelReservationHandler "github.com/vecindad/VCN-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/vecindad/VCN-ReservationService/internal/api/handlers/create_reservation"
	getAllReservationsHandler "github.com/vecindad/VCN-ReservationService/internal/api/handlers/get_all_reservations"
	getAvailabilityHandler "github.com/vecindad/VCN-ReservationService/internal/api/handlers/get_availability"
	getFacilitiesHandler "github.com/vecindad/VCN-ReservationService/internal/api/handlers/get_facilities"
	getFacilityHandler "github.com/vecindad/VCN-ReservationService/internal/api/handlers/get_facility"
	getMyReservationsHandler "github.com/vecindad/VCN-ReservationService/internal/api/handlers/get_my_reservations"
	getStatsHandler "github.com/vecindad/VCN-ReservationService/internal/api/handlers/get_stats"
	updateFacilityHandler "github.com/vecindad/VCN-ReservationService/internal/api/handlers/update_facility"
	"github.com/vecindad/VCN-ReservationService/internal/api/middleware"
	"github.com/vecindad/VCN-ReservationService/internal/app"
	"github.com/vecindad/VCN-ReservationService/internal/config"
	facilityRepo "github.com/vecindad/VCN-ReservationService/internal/infra/storage/facility"
	reservationRepo "github.com/vecindad/VCN-ReservationService/internal/infra/storage/reservation"
	notifierClient "github.com/vecindad/VCN-ReservationService/internal/integrations/notifier"
	facilitiesService "github.com/vecindad/VCN-ReservationService/internal/service/facilities"
	reservationsService "github.com/vecindad/VCN-ReservationService/internal/service/reservations"
	statsService "github.com/vecindad/VCN-ReservationService/internal/service/stats"
	createReservationUC "github.com/vecindad/VCN-ReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/vecindad/VCN-ReservationService/internal/usecase/get_availability"
	"github.com/vecindad/VCN-ReservationService/pkg/dbmetrics"
	"github.com/vecindad/VCN-ReservationService/pkg/logger"
	"github.com/vecindad/VCN-ReservationService/pkg/metrics"
	"github.com/vecindad/VCN-ReservationService/pkg/simpletxmanager"
	"github.com/vecindad/VCN-ReservationService/pkg/txmanager"
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

	log.Info("Starting VCN-ReservationService...")
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

	// Применяем миграции
	migrator, err := app.NewMigrator(db, cfg.Database.MigrationsDir)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		log.Info("Database migrations applied, schema version=%d", version)
	}

	// Таймзона, в которой считается календарный день занятости
	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Клиент сервиса уведомлений
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		cfg.Notifier.Enabled,
		log,
	)
	log.Info("Notifier client initialized (enabled=%t, url=%s)", cfg.Notifier.Enabled, cfg.Notifier.URL)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		facilityRepository    *facilityRepo.Repository
		txMgr                 createReservationUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		facilityRepository = facilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		facilityRepository = facilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, notifier, log)
	facilitiesSvc := facilitiesService.NewService(facilityRepository, log)
	statsSvc := statsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		facilityRepository,
		txMgr,
		notifier,
		cfg.Booking.PriceTaxFactor,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		facilityRepository,
		location,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getMyReservations := getMyReservationsHandler.NewHandler(reservationsSvc, log)
	getAllReservations := getAllReservationsHandler.NewHandler(reservationsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, location, log)
	getFacilities := getFacilitiesHandler.NewHandler(facilitiesSvc, log)
	getFacility := getFacilityHandler.NewHandler(facilitiesSvc, log)
	updateFacility := updateFacilityHandler.NewHandler(facilitiesSvc, log)
	getStats := getStatsHandler.NewHandler(statsSvc, log)

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

	// Список объектов бронирования
	api.HandleFunc("/facilities", getFacilities.Handle).Methods(http.MethodGet)

	// Карточка объекта
	api.HandleFunc("/facilities/{name}", getFacility.Handle).Methods(http.MethodGet)

	// Занятость объекта на календарный день
	api.HandleFunc("/facilities/{name}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Список бронирований (все для администратора, свои для резидента)
	protected.HandleFunc("/reservations", getAllReservations.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// Бронирования текущего пользователя
	protected.HandleFunc("/users/me/reservations", getMyReservations.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	// Обновление цены и вместимости объекта
	protected.HandleFunc("/facilities/{facilityId}", updateFacility.Handle).Methods(http.MethodPut)

	// Агрегированная статистика
	protected.HandleFunc("/admin/stats", getStats.Handle).Methods(http.MethodGet)

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
