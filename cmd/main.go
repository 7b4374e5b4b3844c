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

	createBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_booking"
	fullyBookedDaysHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/fully_booked_days"
	getBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_bookings"
	transitionStatusHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/transition_status"
	updateBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_booking"
	workerScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/worker_schedule"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/infra/broadcast"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	materialRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/material"
	personRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/person"
	procedureRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/procedure"
	notifyServiceClient "github.com/m04kA/SMC-SalonService/internal/integrations/notifyservice"
	bookingsService "github.com/m04kA/SMC-SalonService/internal/service/bookings"
	inventoryService "github.com/m04kA/SMC-SalonService/internal/service/inventory"
	loyaltyService "github.com/m04kA/SMC-SalonService/internal/service/loyalty"
	createBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	fullyBookedDaysUC "github.com/m04kA/SMC-SalonService/internal/usecase/fully_booked_days"
	transitionStatusUC "github.com/m04kA/SMC-SalonService/internal/usecase/transition_status"
	updateBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Операционное окно салона и таблица скидок
	schedule, err := cfg.DomainSchedule()
	if err != nil {
		log.Fatal("Failed to parse schedule config: %v", err)
	}
	discounts := cfg.DomainDiscounts()

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

	// Клиент сервиса уведомлений (опционален)
	var notifier bookingsService.Notifier = notifyServiceClient.Nop{}
	if cfg.NotifyService.Enabled {
		notifier = notifyServiceClient.NewClient(
			cfg.NotifyService.URL,
			time.Duration(cfg.NotifyService.Timeout)*time.Second,
			log,
		)
		log.Info("NotifyService client initialized (url=%s, timeout=%ds)",
			cfg.NotifyService.URL, cfg.NotifyService.Timeout)
	}

	// Redis для live-рассылки подписчикам календаря (опционален)
	var broadcaster bookingsService.Broadcaster = broadcast.Nop{}
	if cfg.Redis.Enabled {
		rdb, err := broadcast.Connect(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
		broadcaster = broadcast.NewPublisher(rdb, log)
		log.Info("Redis broadcaster initialized (addr=%s, channel=%s)",
			cfg.Redis.Addr, broadcast.ChannelBookingsChanged())
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		personRepository    *personRepo.Repository
		procedureRepository *procedureRepo.Repository
		materialRepository  *materialRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		personRepository = personRepo.NewRepository(wrappedDB)
		procedureRepository = procedureRepo.NewRepository(wrappedDB)
		materialRepository = materialRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		personRepository = personRepo.NewRepository(db)
		procedureRepository = procedureRepo.NewRepository(db)
		materialRepository = materialRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	loyaltySvc := loyaltyService.NewService(personRepository, log)
	inventorySvc := inventoryService.NewService(procedureRepository, materialRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		personRepository,
		procedureRepository,
		notifier,
		broadcaster,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		personRepository,
		procedureRepository,
		txMgr,
		notifier,
		broadcaster,
		schedule,
		discounts,
		log,
	)

	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		personRepository,
		procedureRepository,
		txMgr,
		notifier,
		broadcaster,
		schedule,
		log,
	)

	transitionStatusUseCase := transitionStatusUC.NewUseCase(
		bookingRepository,
		personRepository,
		loyaltySvc,
		inventorySvc,
		txMgr,
		notifier,
		broadcaster,
		log,
	)

	fullyBookedDaysUseCase := fullyBookedDaysUC.NewUseCase(
		bookingRepository,
		personRepository,
		procedureRepository,
		schedule,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	transitionStatus := transitionStatusHandler.NewHandler(transitionStatusUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	workerSchedule := workerScheduleHandler.NewHandler(bookingSvc, log)
	fullyBookedDays := fullyBookedDaysHandler.NewHandler(fullyBookedDaysUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Полностью занятые дни месяца
	api.HandleFunc("/calendar/fully-booked-days", fullyBookedDays.Handle).Methods(http.MethodGet)

	// Занятые интервалы человека на день
	api.HandleFunc("/persons/{personId}/schedule", workerSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрами и сортировкой
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Частичное обновление бронирования
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// Удаление бронирования
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Переход статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", transitionStatus.Handle).Methods(http.MethodPatch)

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
