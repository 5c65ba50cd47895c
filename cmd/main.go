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

	createBookingHandler "github.com/haarkliniek/HK-AvailabilityService/internal/api/handlers/create_booking"
	getDaySlotsHandler "github.com/haarkliniek/HK-AvailabilityService/internal/api/handlers/get_day_slots"
	getFirstAvailableDateHandler "github.com/haarkliniek/HK-AvailabilityService/internal/api/handlers/get_first_available_date"
	getMonthAvailabilityHandler "github.com/haarkliniek/HK-AvailabilityService/internal/api/handlers/get_month_availability"
	"github.com/haarkliniek/HK-AvailabilityService/internal/api/middleware"
	"github.com/haarkliniek/HK-AvailabilityService/internal/config"
	"github.com/haarkliniek/HK-AvailabilityService/internal/infra/cache"
	"github.com/haarkliniek/HK-AvailabilityService/internal/infra/sessions"
	slotsRepo "github.com/haarkliniek/HK-AvailabilityService/internal/infra/storage/slots"
	calendarClient "github.com/haarkliniek/HK-AvailabilityService/internal/integrations/calendarprovider"
	assignmentService "github.com/haarkliniek/HK-AvailabilityService/internal/service/assignment"
	availabilityService "github.com/haarkliniek/HK-AvailabilityService/internal/service/availability"
	createBookingUC "github.com/haarkliniek/HK-AvailabilityService/internal/usecase/create_booking"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/dbmetrics"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/logger"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HK-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Build the service catalog; unknown service configuration is fatal here,
	// never inside an aggregation call
	catalog, err := config.BuildCatalog(cfg)
	if err != nil {
		log.Fatal("Failed to build service catalog: %v", err)
	}
	log.Info("Service catalog loaded (%d treatments configured)", len(cfg.Services))

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Connect to Redis
	redisClient := cache.NewRedisClient(cfg.Redis)
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		// The cache is an optimization; start without it rather than failing
		log.Warn("Redis unavailable, availability cache disabled: %v", err)
		redisClient = nil
	} else {
		log.Info("Successfully connected to Redis (address=%s, db=%d)", cfg.Redis.Address, cfg.Redis.DB)
	}

	availabilityCache := cache.NewAvailabilityCache(
		redisClient,
		time.Duration(cfg.Availability.CacheTTLMinutes)*time.Minute,
		metricsCollector,
	)
	sessionStore := sessions.NewStore(
		redisClient,
		time.Duration(cfg.Availability.SessionTTLMinutes)*time.Minute,
	)

	// Initialize the calendar provider client
	calendar := calendarClient.NewClient(
		cfg.Scheduling.URL,
		cfg.Scheduling.APIKey,
		time.Duration(cfg.Scheduling.Timeout)*time.Second,
		log,
	)
	log.Info("Calendar provider client initialized (url=%s, timeout=%ds)",
		cfg.Scheduling.URL, cfg.Scheduling.Timeout)

	// Initialize the slot repository (with metrics wrapper if enabled)
	var slotRepository *slotsRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		slotRepository = slotsRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		slotRepository = slotsRepo.NewRepository(db)
	}

	// Initialize services
	availabilitySvc := availabilityService.NewService(
		slotRepository,
		availabilityCache,
		cfg.Availability.LookaheadDays,
		log,
	)
	assignmentSvc := assignmentService.NewService(
		slotRepository,
		catalog,
		log,
	)

	// Initialize use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		assignmentSvc,
		catalog,
		calendar,
		availabilityCache,
		sessionStore,
		log,
	)

	// Initialize handlers
	getDaySlots := getDaySlotsHandler.NewHandler(availabilitySvc, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(availabilitySvc, log)
	getFirstAvailableDate := getFirstAvailableDateHandler.NewHandler(availabilitySvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	// Set up the router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: availability reads for the booking calendar
	api.HandleFunc("/services/{serviceKey}/days/{date}/times",
		getDaySlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceKey}/month-availability",
		getMonthAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceKey}/first-available-date",
		getFirstAvailableDate.Handle).Methods(http.MethodGet)

	// Protected routes: booking creation requires a session id
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Create the HTTP server
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
