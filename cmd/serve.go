package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/heal-booking-service/internal/api/middleware"
	"github.com/m04kA/heal-booking-service/internal/config"
	"github.com/m04kA/heal-booking-service/internal/infra/redis"
	"github.com/m04kA/heal-booking-service/internal/infra/session"
	bookingRepo "github.com/m04kA/heal-booking-service/internal/infra/storage/booking"
	healRepo "github.com/m04kA/heal-booking-service/internal/infra/storage/heal"
	"github.com/m04kA/heal-booking-service/internal/infra/storage/postgres"
	userRepo "github.com/m04kA/heal-booking-service/internal/infra/storage/user"
	bookingsService "github.com/m04kA/heal-booking-service/internal/service/bookings"
	healsService "github.com/m04kA/heal-booking-service/internal/service/heals"
	usersService "github.com/m04kA/heal-booking-service/internal/service/users"
	createBookingUC "github.com/m04kA/heal-booking-service/internal/usecase/create_booking"
	listSlotsUC "github.com/m04kA/heal-booking-service/internal/usecase/list_slots"
	"github.com/m04kA/heal-booking-service/pkg/dbmetrics"
	"github.com/m04kA/heal-booking-service/pkg/logger"
	"github.com/m04kA/heal-booking-service/pkg/metrics"
	"github.com/m04kA/heal-booking-service/pkg/passhash"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return serve(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(cfg *config.Config) error {
	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting heal-booking-service...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Booking.Location()
	if err != nil {
		return fmt.Errorf("booking timezone: %w", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	connector := postgres.NewConnector(cfg.Database)
	defer connector.Close()

	db, err := connector.Get(context.Background())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(executor)
	healRepository := healRepo.NewRepository(executor)
	userRepository := userRepo.NewRepository(executor)

	// Сессии и пароли
	sessions := session.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	hasher := passhash.New(hasherParams(cfg.Auth))

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, loc, log)
	healSvc := healsService.NewService(healRepository, log)
	userSvc := usersService.NewService(userRepository, hasher, sessions, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		healRepository,
		userRepository,
		metricsCollector,
		loc,
		log,
	)
	listSlotsUseCase := listSlotsUC.NewUseCase(loc, log)

	limiter := newRateLimiter(cfg, log)

	r := newRouter(routerDeps{
		cfg:           cfg,
		log:           log,
		metrics:       metricsCollector,
		auth:          middleware.NewAuth(sessions, log),
		limiter:       limiter,
		db:            connector,
		bookings:      bookingSvc,
		heals:         healSvc,
		users:         userSvc,
		createBooking: createBookingUseCase,
		listSlots:     listSlotsUseCase,
	})

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
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// newRateLimiter возвращает nil, если лимит выключен или redis недоступен
func newRateLimiter(cfg *config.Config, log *logger.Logger) middleware.RateLimiter {
	if !cfg.RateLimit.Enabled {
		log.Info("Rate limiting disabled")
		return nil
	}

	client, err := redis.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		log.Warn("Rate limiting disabled, redis unavailable: %v", err)
		return nil
	}

	log.Info("Rate limiting enabled (redis=%s, capacity=%d)", cfg.Redis.Addr, cfg.RateLimit.Capacity)
	return redis.NewTokenBucket(client, cfg.RateLimit)
}

func hasherParams(a config.AuthConfig) passhash.Params {
	params := passhash.DefaultParams
	if a.Argon2Memory > 0 {
		params.Memory = a.Argon2Memory
	}
	if a.Argon2Iterations > 0 {
		params.Iterations = a.Argon2Iterations
	}
	if a.Argon2Parallelism > 0 {
		params.Parallelism = a.Argon2Parallelism
	}
	return params
}
