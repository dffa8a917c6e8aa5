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

	createAppointmentHandler "github.com/acarlier/MT-BookingService/internal/api/handlers/create_appointment"
	createContactMessageHandler "github.com/acarlier/MT-BookingService/internal/api/handlers/create_contact_message"
	getAvailabilityHandler "github.com/acarlier/MT-BookingService/internal/api/handlers/get_availability"
	getServiceHandler "github.com/acarlier/MT-BookingService/internal/api/handlers/get_service"
	listAppointmentsHandler "github.com/acarlier/MT-BookingService/internal/api/handlers/list_appointments"
	listContactMessagesHandler "github.com/acarlier/MT-BookingService/internal/api/handlers/list_contact_messages"
	listServicesHandler "github.com/acarlier/MT-BookingService/internal/api/handlers/list_services"
	updateStatusHandler "github.com/acarlier/MT-BookingService/internal/api/handlers/update_appointment_status"
	"github.com/acarlier/MT-BookingService/internal/api/middleware"
	"github.com/acarlier/MT-BookingService/internal/config"
	"github.com/acarlier/MT-BookingService/internal/domain"
	appointmentRepo "github.com/acarlier/MT-BookingService/internal/infra/storage/appointment"
	contactRepo "github.com/acarlier/MT-BookingService/internal/infra/storage/contact"
	"github.com/acarlier/MT-BookingService/internal/infra/storage/memory"
	"github.com/acarlier/MT-BookingService/internal/infra/storage/seed"
	serviceRepo "github.com/acarlier/MT-BookingService/internal/infra/storage/service"
	appointmentsService "github.com/acarlier/MT-BookingService/internal/service/appointments"
	catalogService "github.com/acarlier/MT-BookingService/internal/service/catalog"
	contactService "github.com/acarlier/MT-BookingService/internal/service/contact"
	createAppointmentUC "github.com/acarlier/MT-BookingService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/acarlier/MT-BookingService/internal/usecase/get_availability"
	"github.com/acarlier/MT-BookingService/pkg/dbmetrics"
	"github.com/acarlier/MT-BookingService/pkg/logger"
	"github.com/acarlier/MT-BookingService/pkg/metrics"
	"github.com/acarlier/MT-BookingService/pkg/txmanager"
)

// poolStatsInterval период снятия статистики connection pool
const poolStatsInterval = 15 * time.Second

// appointmentStore операции хранилища записей, общие для обоих бэкендов
type appointmentStore interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByDate(ctx context.Context, date string) ([]*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListAll(ctx context.Context) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
}

// serviceStore операции каталога услуг
type serviceStore interface {
	ListAll(ctx context.Context) ([]*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// contactStore операции хранилища сообщений контактной формы
type contactStore interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	ListAll(ctx context.Context) ([]*domain.ContactMessage, error)
}

// txManager критическая секция для допуска записи
type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

	log.Info("Starting MT-BookingService...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Backend)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var (
		appointments appointmentStore
		services     serviceStore
		contacts     contactStore
		txMgr        txManager
	)

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
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

		wrappedDB := dbmetrics.Wrap(db, metricsCollector)
		if cfg.Metrics.Enabled {
			wrappedDB.StartPoolStatsCollector(poolStatsInterval, stopMetricsCh)
			log.Info("Database metrics collection started")
		}

		svcRepository := serviceRepo.NewRepository(wrappedDB)

		// Идемпотентно загружаем стартовый каталог услуг
		seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
		if err := svcRepository.Seed(seedCtx, seed.Services()); err != nil {
			cancelSeed()
			log.Fatal("Failed to seed service catalog: %v", err)
		}
		cancelSeed()
		log.Info("Service catalog seeded")

		appointments = appointmentRepo.NewRepository(wrappedDB)
		services = svcRepository
		contacts = contactRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)

	case config.BackendMemory:
		appointments = memory.NewAppointmentRepository()
		services = memory.NewServiceRepository(seed.Services())
		contacts = memory.NewContactRepository()
		txMgr = memory.NewTxManager()
		log.Info("Using in-memory storage (state is lost on restart)")
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointments, log)
	catalogSvc := catalogService.NewService(services, log)
	contactSvc := contactService.NewService(contacts, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointments,
		services,
		txMgr,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(appointments, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	createContactMessage := createContactMessageHandler.NewHandler(contactSvc, log)
	listContactMessages := listContactMessagesHandler.NewHandler(contactSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/appointments/availability/{date}", getAvailability.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Сообщение через контактную форму
	api.HandleFunc("/contact", createContactMessage.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	if cfg.Auth.AdminToken != "" {
		admin := api.PathPrefix("").Subrouter()
		admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

		// Список всех записей
		admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

		// Изменение статуса записи (подтверждение/отмена)
		admin.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

		// Список сообщений контактной формы
		admin.HandleFunc("/contact", listContactMessages.Handle).Methods(http.MethodGet)
	} else {
		log.Warn("Admin token is not configured, administrative endpoints are disabled")
	}

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
