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

	cancelAppointmentHandler "github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers/complete_appointment"
	confirmAppointmentHandler "github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers/confirm_appointment"
	createAppointmentHandler "github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers/create_appointment"
	createBlockHandler "github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers/create_block"
	deleteBlockHandler "github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers/delete_block"
	getAppointmentHandler "github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers/get_available_slots"
	getBarberAgendaHandler "github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers/get_barber_agenda"
	getBranchScheduleHandler "github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers/get_branch_schedule"
	listBlocksHandler "github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers/list_blocks"
	rescheduleAppointmentHandler "github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers/reschedule_appointment"
	updateBranchScheduleHandler "github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers/update_branch_schedule"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/middleware"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/config"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/infra/lock"
	appointmentRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/appointment"
	blockRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/block"
	ledgerRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/ledger"
	scheduleRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/schedule"
	catalogServiceClient "github.com/mtrevino/BarberPro-SchedulingService/internal/integrations/catalogservice"
	appointmentsService "github.com/mtrevino/BarberPro-SchedulingService/internal/service/appointments"
	scheduleService "github.com/mtrevino/BarberPro-SchedulingService/internal/service/schedule"
	completeAppointmentUC "github.com/mtrevino/BarberPro-SchedulingService/internal/usecase/complete_appointment"
	createAppointmentUC "github.com/mtrevino/BarberPro-SchedulingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/mtrevino/BarberPro-SchedulingService/internal/usecase/get_available_slots"
	rescheduleAppointmentUC "github.com/mtrevino/BarberPro-SchedulingService/internal/usecase/reschedule_appointment"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/dbmetrics"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/logger"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/metrics"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/simpletxmanager"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/txmanager"
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

	log.Info("Starting BarberPro-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Единая локальная временная зона процесса
	location, err := time.LoadLocation(cfg.Scheduling.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Scheduling.Timezone, err)
	}
	log.Info("Scheduling timezone: %s, default granularity: %d min",
		cfg.Scheduling.Timezone, cfg.Scheduling.GranularityMinutes)

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

	// Инициализируем клиента каталога услуг
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog service client initialized (url=%s, timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем распределенную блокировку слотов
	var locker createAppointmentUC.SlotLocker
	if cfg.Redis.Enabled {
		redisClient, err := lock.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		locker = lock.NewRedisSlotLocker(redisClient, time.Duration(cfg.Redis.LockTTL)*time.Second)
		log.Info("Redis slot locker enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.LockTTL)
	} else {
		locker = lock.NoopSlotLocker{}
		log.Info("Redis disabled, slot serialization relies on serializable transactions only")
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		blockRepository       *blockRepo.Repository
		ledgerRepository      *ledgerRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		ledgerRepository = ledgerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		ledgerRepository = ledgerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &getAvailableSlotsUC.RealTimeProvider{Location: location}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, blockRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		blockRepository,
		appointmentRepository,
		catalogClient,
		timeProvider,
		cfg.Scheduling.GranularityMinutes,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		blockRepository,
		catalogClient,
		txMgr,
		locker,
		timeProvider,
		log,
	)

	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		blockRepository,
		txMgr,
		locker,
		timeProvider,
		log,
	)

	completeAppointmentUseCase := completeAppointmentUC.NewUseCase(
		appointmentRepository,
		ledgerRepository,
		txMgr,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(completeAppointmentUseCase, log)
	getBarberAgenda := getBarberAgendaHandler.NewHandler(appointmentsSvc, log)
	getBranchSchedule := getBranchScheduleHandler.NewHandler(scheduleSvc, log)
	updateBranchSchedule := updateBranchScheduleHandler.NewHandler(scheduleSvc, log)
	createBlock := createBlockHandler.NewHandler(scheduleSvc, log)
	listBlocks := listBlocksHandler.NewHandler(scheduleSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты барбера на дату
	api.HandleFunc("/branches/{branchId}/barbers/{barberId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание филиала
	api.HandleFunc("/branches/{branchId}/schedule",
		getBranchSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/confirm", confirmAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// --- Расписание барбера ---
	protected.HandleFunc("/barbers/{barberId}/agenda", getBarberAgenda.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbers/{barberId}/blocks", createBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/barbers/{barberId}/blocks", listBlocks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbers/{barberId}/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

	// --- Управление расписанием филиала ---
	protected.HandleFunc("/branches/{branchId}/schedule", updateBranchSchedule.Handle).Methods(http.MethodPut)

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
