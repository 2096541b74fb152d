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

	approveBookingHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/approve_booking"
	cancelBookingHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/cancel_booking"
	checkConflictHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/check_conflict"
	createBookingHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/create_booking"
	createHallHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/create_hall"
	createSectionHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/create_section"
	deleteSectionHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/delete_section"
	editBookingHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/edit_booking"
	getAuditLogHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/get_audit_log"
	getBookingHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/get_booking"
	getDashboardStatsHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/get_dashboard_stats"
	getHallBookingsHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/get_hall_bookings"
	getTimeSlotsHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/get_time_slots"
	getUserBookingsHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/get_user_bookings"
	listHallsHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/list_halls"
	listSectionsHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/list_sections"
	rejectBookingHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/reject_booking"
	updateHallHandler "github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers/update_hall"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/middleware"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/config"
	auditRepo "github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/audit"
	bookingRepo "github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/booking"
	hallRepo "github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/hall"
	sectionRepo "github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/section"
	directoryClient "github.com/aryanakulan-rgb/conferencehall-allocation/internal/integrations/directoryservice"
	bookingsService "github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/bookings"
	hallsService "github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/halls"
	sectionsService "github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/sections"
	statsService "github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/stats"
	checkConflictUC "github.com/aryanakulan-rgb/conferencehall-allocation/internal/usecase/check_conflict"
	createBookingUC "github.com/aryanakulan-rgb/conferencehall-allocation/internal/usecase/create_booking"
	editBookingUC "github.com/aryanakulan-rgb/conferencehall-allocation/internal/usecase/edit_booking"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/dbmetrics"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/logger"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/metrics"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/simpletxmanager"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/txmanager"
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

	log.Info("Starting conferencehall-allocation service...")
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

	// Клиент справочника пользователей
	directory := directoryClient.NewClient(
		cfg.DirectoryService.URL,
		time.Duration(cfg.DirectoryService.Timeout)*time.Second,
		log,
	)
	log.Info("Directory service client initialized (url=%s, timeout=%ds)",
		cfg.DirectoryService.URL, cfg.DirectoryService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		hallRepository    *hallRepo.Repository
		sectionRepository *sectionRepo.Repository
		auditRepository   *auditRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		hallRepository = hallRepo.NewRepository(wrappedDB)
		sectionRepository = sectionRepo.NewRepository(wrappedDB)
		auditRepository = auditRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		hallRepository = hallRepo.NewRepository(db)
		sectionRepository = sectionRepo.NewRepository(db)
		auditRepository = auditRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, auditRepository, directory, log)
	hallSvc := hallsService.New(hallRepository, auditRepository, log)
	sectionSvc := sectionsService.New(sectionRepository, log)
	statsSvc := statsService.New(bookingRepository, auditRepository, log)

	// Инициализируем use cases.
	// Проверка конфликтов переиспользуется create/edit внутри
	// сериализуемой транзакции: активная транзакция приходит через context.
	checkConflictUseCase := checkConflictUC.NewUseCase(bookingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		hallRepository,
		checkConflictUseCase,
		txMgr,
		log,
	)
	editBookingUseCase := editBookingUC.NewUseCase(
		bookingRepository,
		hallRepository,
		checkConflictUseCase,
		txMgr,
		log,
	)

	// Инициализируем handlers
	checkConflict := checkConflictHandler.NewHandler(checkConflictUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	editBooking := editBookingHandler.NewHandler(editBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	approveBooking := approveBookingHandler.NewHandler(bookingSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getHallBookings := getHallBookingsHandler.NewHandler(bookingSvc, log)
	listHalls := listHallsHandler.NewHandler(hallSvc, log)
	createHall := createHallHandler.NewHandler(hallSvc, log)
	updateHall := updateHallHandler.NewHandler(hallSvc, log)
	listSections := listSectionsHandler.NewHandler(sectionSvc, log)
	createSection := createSectionHandler.NewHandler(sectionSvc, log)
	deleteSection := deleteSectionHandler.NewHandler(sectionSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(statsSvc, log)
	getAuditLog := getAuditLogHandler.NewHandler(statsSvc, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список залов
	api.HandleFunc("/halls", listHalls.Handle).Methods(http.MethodGet)

	// Расписание зала
	api.HandleFunc("/halls/{hallId}/bookings", getHallBookings.Handle).Methods(http.MethodGet)

	// Консультативная проверка конфликта для формы бронирования
	api.HandleFunc("/bookings/check-conflict", checkConflict.Handle).Methods(http.MethodPost)

	// Грид получасовых слотов для формы бронирования
	api.HandleFunc("/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", editBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Справочник секций (чтение доступно всем аутентифицированным)
	protected.HandleFunc("/sections", listSections.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin(log))

	// Решения по заявкам
	admin.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPatch)

	// Управление залами
	admin.HandleFunc("/halls", createHall.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/halls/{hallId}", updateHall.Handle).Methods(http.MethodPut)

	// Управление секциями
	admin.HandleFunc("/sections", createSection.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/sections/{sectionId}", deleteSection.Handle).Methods(http.MethodDelete)

	// Сводка и журнал действий для панели администратора
	admin.HandleFunc("/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/audit", getAuditLog.Handle).Methods(http.MethodGet)

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
