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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/PGC-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/PGC-BookingService/internal/api/handlers/create_booking"
	createMemberHandler "github.com/m04kA/PGC-BookingService/internal/api/handlers/create_member"
	deleteMemberHandler "github.com/m04kA/PGC-BookingService/internal/api/handlers/delete_member"
	getAvailableSlotsHandler "github.com/m04kA/PGC-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/PGC-BookingService/internal/api/handlers/get_booking"
	getMemberHandler "github.com/m04kA/PGC-BookingService/internal/api/handlers/get_member"
	getMemberBookingsHandler "github.com/m04kA/PGC-BookingService/internal/api/handlers/get_member_bookings"
	listBookingsHandler "github.com/m04kA/PGC-BookingService/internal/api/handlers/list_bookings"
	listMembersHandler "github.com/m04kA/PGC-BookingService/internal/api/handlers/list_members"
	updateBookingHandler "github.com/m04kA/PGC-BookingService/internal/api/handlers/update_booking"
	updateMemberHandler "github.com/m04kA/PGC-BookingService/internal/api/handlers/update_member"
	"github.com/m04kA/PGC-BookingService/internal/api/middleware"
	"github.com/m04kA/PGC-BookingService/internal/config"
	bookingRepo "github.com/m04kA/PGC-BookingService/internal/infra/storage/booking"
	memberRepo "github.com/m04kA/PGC-BookingService/internal/infra/storage/member"
	bookingsService "github.com/m04kA/PGC-BookingService/internal/service/bookings"
	membersService "github.com/m04kA/PGC-BookingService/internal/service/members"
	createBookingUC "github.com/m04kA/PGC-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/PGC-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/PGC-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PGC-BookingService/pkg/logger"
	"github.com/m04kA/PGC-BookingService/pkg/metrics"
	"github.com/m04kA/PGC-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/PGC-BookingService/pkg/txmanager"
)

func main() {
	// Локальный .env не обязателен, в проде переменные задаёт окружение
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

	log.Info("Starting PGC-BookingService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		memberRepository  *memberRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		memberRepository = memberRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		memberRepository = memberRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		log,
	)
	memberSvc := membersService.NewService(
		memberRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getMemberBookings := getMemberBookingsHandler.NewHandler(bookingSvc, memberSvc, log)
	createMember := createMemberHandler.NewHandler(memberSvc, log)
	getMember := getMemberHandler.NewHandler(memberSvc, log)
	listMembers := listMembersHandler.NewHandler(memberSvc, log)
	updateMember := updateMemberHandler.NewHandler(memberSvc, log)
	deleteMember := deleteMemberHandler.NewHandler(memberSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Ти-таймы ---
	// Свободные слоты на дату
	api.HandleFunc("/tee-times", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований (все или на дату через ?date=)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Полное замещение бронирования
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Удаление бронирования
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// Отмена бронирования (семантически эквивалентна удалению)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Участники клуба ---
	// Регистрация участника
	api.HandleFunc("/members", createMember.Handle).Methods(http.MethodPost)

	// Список участников
	api.HandleFunc("/members", listMembers.Handle).Methods(http.MethodGet)

	// Получение участника по номеру членства
	api.HandleFunc("/members/{membershipNumber}", getMember.Handle).Methods(http.MethodGet)

	// Обновление профиля участника
	api.HandleFunc("/members/{membershipNumber}", updateMember.Handle).Methods(http.MethodPut)

	// Удаление участника (каскадно удаляет его бронирования)
	api.HandleFunc("/members/{membershipNumber}", deleteMember.Handle).Methods(http.MethodDelete)

	// Бронирования участника
	api.HandleFunc("/members/{membershipNumber}/bookings", getMemberBookings.Handle).Methods(http.MethodGet)

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
