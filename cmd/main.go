package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/KasumiMercury/primind-study-scheduler/internal/config"
	"github.com/KasumiMercury/primind-study-scheduler/internal/handler"
	"github.com/KasumiMercury/primind-study-scheduler/internal/health"
	"github.com/KasumiMercury/primind-study-scheduler/internal/infra/repository"
	"github.com/KasumiMercury/primind-study-scheduler/internal/infra/runrecorder"
	"github.com/KasumiMercury/primind-study-scheduler/internal/infra/summarystore"
	"github.com/KasumiMercury/primind-study-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-study-scheduler/internal/observability/middleware"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/dedup"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/planlock"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/reschedule"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/review"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/runlog"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/slot"
)

// Version and Revision are set via ldflags at build time
var (
	Version  = "dev"
	Revision = ""
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	schedulerMetrics, err := metrics.NewSchedulerMetrics()
	if err != nil {
		slog.Error("failed to initialize scheduler metrics", slog.String("error", err.Error()))
		return 1
	}

	runRecorder := runrecorder.NewRecorder(ctx, runrecorder.LoadConfig())
	defer func() {
		if err := runRecorder.Close(); err != nil {
			slog.Warn("failed to close run recorder", slog.String("error", err.Error()))
		}
	}()

	db, err := repository.Open(ctx, cfg.Database.DSN(), repository.DefaultDBOptions())
	if err != nil {
		slog.Error("failed to connect database",
			slog.String("event", "db.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := repository.Close(db); err != nil {
			slog.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	if err := repository.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", slog.String("error", err.Error()))
		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to access database handle", slog.String("error", err.Error()))
		return 1
	}

	redisClient := redis.NewClient(cfg.Redis.Options())

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("storage connected",
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("redis_key_prefix", cfg.Redis.KeyPrefix),
	)

	taskRepo := repository.NewTaskRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	userRepo := repository.NewUserRepository(db)
	planRepo := repository.NewStudyPlanRepository(db)
	topicRepo := repository.NewTopicRepository(db)

	runLog := runlog.New(summarystore.NewSummaryStore(redisClient, cfg.Redis.KeyPrefix, cfg.Schedule.SummaryTTL), runRecorder)
	locker := planlock.New()
	finder := slot.NewFinder(cfg.Schedule.Location)
	hours := slot.WorkingHours{StartHour: cfg.Schedule.WorkStartHour, EndHour: cfg.Schedule.WorkEndHour}

	rescheduleService := reschedule.NewService(
		userRepo,
		planRepo,
		taskRepo,
		alertRepo,
		finder,
		locker,
		runLog,
		schedulerMetrics,
		reschedule.Config{
			Hours: hours,
			DayPolicy: slot.DayPolicy{
				HorizonDays:  cfg.Schedule.RescheduleHorizonDays,
				FallbackDays: cfg.Schedule.FallbackDays,
			},
		},
	)
	reviewService := review.NewService(
		planRepo,
		topicRepo,
		taskRepo,
		alertRepo,
		finder,
		locker,
		runLog,
		schedulerMetrics,
		hours,
	)
	dedupService := dedup.NewService(
		planRepo,
		topicRepo,
		taskRepo,
		alertRepo,
		locker,
		runLog,
		schedulerMetrics,
		cfg.Schedule.Location,
	)
	scheduleHandler := handler.NewScheduleHandler(rescheduleService, reviewService, dedupService, planRepo, runLog)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      serviceModule,
		TracerName:  "github.com/KasumiMercury/primind-study-scheduler/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, sqlDB, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	scheduleHandler.RegisterRoutes(r.Group("/api/v1"))

	var rootHandler http.Handler = r
	if cfg.CORS.Enabled() {
		rootHandler = cors.New(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		}).Handler(r)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           rootHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("timezone", cfg.Schedule.Location.String()),
			slog.Int("work_start_hour", cfg.Schedule.WorkStartHour),
			slog.Int("work_end_hour", cfg.Schedule.WorkEndHour),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
