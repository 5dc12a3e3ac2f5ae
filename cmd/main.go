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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveBookingHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/approve_booking"
	approveModificationHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/approve_modification"
	canCancelHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/can_cancel"
	canModifyHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/can_modify"
	cancelBookingHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/create_booking"
	createPropertyHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/create_property"
	declineBookingHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/decline_booking"
	deletePropertyHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/delete_property"
	denyModificationHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/deny_modification"
	getAvailabilityHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/get_booking"
	getPropertyHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/get_property"
	getPropertyBookingsHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/get_property_bookings"
	getUserBookingsHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/get_user_bookings"
	hostAnalyticsHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/host_analytics"
	requestModificationHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/request_modification"
	searchPropertiesHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/search_properties"
	updateAvailabilityHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/update_availability"
	updatePropertyHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/update_property"
	wishlistHandler "github.com/m04kA/VRM-BookingService/internal/api/handlers/wishlist"
	"github.com/m04kA/VRM-BookingService/internal/api/middleware"
	"github.com/m04kA/VRM-BookingService/internal/config"
	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/infra/events"
	availabilityRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/booking"
	propertyRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/property"
	wishlistRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/wishlist"
	analyticsService "github.com/m04kA/VRM-BookingService/internal/service/analytics"
	availabilityService "github.com/m04kA/VRM-BookingService/internal/service/availability"
	bookingsService "github.com/m04kA/VRM-BookingService/internal/service/bookings"
	propertiesService "github.com/m04kA/VRM-BookingService/internal/service/properties"
	wishlistService "github.com/m04kA/VRM-BookingService/internal/service/wishlist"
	approveModificationUC "github.com/m04kA/VRM-BookingService/internal/usecase/approve_modification"
	cancelBookingUC "github.com/m04kA/VRM-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/VRM-BookingService/internal/usecase/create_booking"
	declineBookingUC "github.com/m04kA/VRM-BookingService/internal/usecase/decline_booking"
	denyModificationUC "github.com/m04kA/VRM-BookingService/internal/usecase/deny_modification"
	requestModificationUC "github.com/m04kA/VRM-BookingService/internal/usecase/request_modification"
	"github.com/m04kA/VRM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/VRM-BookingService/pkg/logger"
	"github.com/m04kA/VRM-BookingService/pkg/metrics"
	"github.com/m04kA/VRM-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/VRM-BookingService/pkg/txmanager"
)

// buildPolicy собирает бизнес-политику из конфигурации
// Нулевые значения заменяются дефолтами
func buildPolicy(cfg config.PolicyConfig) domain.Policy {
	policy := domain.DefaultPolicy()
	if cfg.FullRefundNoticeHours > 0 {
		policy.FullRefundNoticeHours = cfg.FullRefundNoticeHours
	}
	if cfg.PartialRefundNoticeHours > 0 {
		policy.PartialRefundNoticeHours = cfg.PartialRefundNoticeHours
	}
	if cfg.PartialRefundPercent > 0 {
		policy.PartialRefundPercent = cfg.PartialRefundPercent
	}
	if cfg.ModificationNoticeHours > 0 {
		policy.ModificationNoticeHours = cfg.ModificationNoticeHours
	}
	return policy
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

	log.Info("Starting VRM-BookingService...")
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

	// Подключаемся к Redis (хранилище вишлистов)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем publisher событий бронирований
	var publisher events.Publisher
	if cfg.Kafka.Enabled {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Fatal("Failed to create kafka publisher: %v", err)
		}
		publisher = kafkaPublisher
		log.Info("Kafka publisher initialized (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		publisher = events.NopPublisher{}
		log.Info("Kafka disabled, events will not be published")
	}
	defer publisher.Close()

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		propertyRepository     *propertyRepo.Repository
		availabilityRepository *availabilityRepo.Repository
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
		propertyRepository = propertyRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		propertyRepository = propertyRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	wishlistRepository := wishlistRepo.NewRepository(redisClient)

	policy := buildPolicy(cfg.Policy)
	horizonDays := cfg.Policy.CalendarHorizonDays

	// Инициализируем сервисы
	propertiesSvc := propertiesService.NewService(propertyRepository, log)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		propertyRepository,
		horizonDays,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		propertyRepository,
		publisher,
		policy,
		log,
	)
	wishlistSvc := wishlistService.NewService(wishlistRepository, propertyRepository, log)
	analyticsSvc := analyticsService.NewService(
		bookingRepository,
		propertyRepository,
		availabilityRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		propertyRepository,
		availabilityRepository,
		publisher,
		txMgr,
		horizonDays,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		publisher,
		txMgr,
		policy,
		log,
	)
	declineBookingUseCase := declineBookingUC.NewUseCase(
		bookingRepository,
		propertyRepository,
		availabilityRepository,
		publisher,
		txMgr,
		log,
	)
	requestModificationUseCase := requestModificationUC.NewUseCase(
		bookingRepository,
		propertyRepository,
		publisher,
		txMgr,
		policy,
		log,
	)
	approveModificationUseCase := approveModificationUC.NewUseCase(
		bookingRepository,
		propertyRepository,
		availabilityRepository,
		publisher,
		txMgr,
		log,
	)
	denyModificationUseCase := denyModificationUC.NewUseCase(
		bookingRepository,
		propertyRepository,
		publisher,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createProperty := createPropertyHandler.NewHandler(propertiesSvc, log)
	getProperty := getPropertyHandler.NewHandler(propertiesSvc, log)
	searchProperties := searchPropertiesHandler.NewHandler(propertiesSvc, log)
	updateProperty := updatePropertyHandler.NewHandler(propertiesSvc, log)
	deleteProperty := deletePropertyHandler.NewHandler(propertiesSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, propertiesSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	getPropertyBookings := getPropertyBookingsHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	canCancel := canCancelHandler.NewHandler(bookingsSvc, log)
	canModify := canModifyHandler.NewHandler(bookingsSvc, log)
	requestModification := requestModificationHandler.NewHandler(requestModificationUseCase, log)
	approveModification := approveModificationHandler.NewHandler(approveModificationUseCase, log)
	denyModification := denyModificationHandler.NewHandler(denyModificationUseCase, log)
	approveBooking := approveBookingHandler.NewHandler(bookingsSvc, log)
	declineBooking := declineBookingHandler.NewHandler(declineBookingUseCase, log)
	wishlist := wishlistHandler.NewHandler(wishlistSvc, log)
	hostAnalytics := hostAnalyticsHandler.NewHandler(analyticsSvc, log)

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

	// Поиск объявлений
	api.HandleFunc("/properties", searchProperties.Handle).Methods(http.MethodGet)

	// Получение объявления по ID
	api.HandleFunc("/properties/{propertyId}", getProperty.Handle).Methods(http.MethodGet)

	// Календарь доступности объявления
	api.HandleFunc("/properties/{propertyId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Объявления (для хостов) ---
	protected.HandleFunc("/properties", createProperty.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/properties/{propertyId}", updateProperty.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/properties/{propertyId}", deleteProperty.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/properties/{propertyId}/availability", updateAvailability.Handle).Methods(http.MethodPatch)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Предварительная оценка отмены и изменения
	protected.HandleFunc("/bookings/{bookingId}/can-cancel", canCancel.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/can-modify", canModify.Handle).Methods(http.MethodGet)

	// Запросы на изменение бронирования
	protected.HandleFunc("/bookings/{bookingId}/modification",
		requestModification.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/modification/{modificationId}/approve",
		approveModification.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/modification/{modificationId}/deny",
		denyModification.Handle).Methods(http.MethodPatch)

	// Решение хоста по pending бронированию
	protected.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/decline", declineBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление объявлением (для хостов) ---
	// Список бронирований объявления
	protected.HandleFunc("/properties/{propertyId}/bookings", getPropertyBookings.Handle).Methods(http.MethodGet)

	// --- Вишлист ---
	protected.HandleFunc("/users/{userId}/wishlist", wishlist.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/wishlist/{propertyId}", wishlist.HandleAdd).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/wishlist/{propertyId}", wishlist.HandleRemove).Methods(http.MethodDelete)

	// --- Аналитика хоста ---
	protected.HandleFunc("/hosts/{hostId}/analytics", hostAnalytics.Handle).Methods(http.MethodGet)

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
