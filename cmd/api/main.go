package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-scheduler/internal/audit"
	"github.com/BruksfildServices01/appointment-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/appointment-scheduler/internal/db"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/appointment-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-scheduler/internal/jobs"
	"github.com/BruksfildServices01/appointment-scheduler/internal/logger"
	"github.com/BruksfildServices01/appointment-scheduler/internal/metrics"
	"github.com/BruksfildServices01/appointment-scheduler/internal/routes"
	"github.com/BruksfildServices01/appointment-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/appointment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// INFRA
	// ======================================================
	loc := timezone.Location(cfg.Timezone)
	clock := timezone.SystemClock(loc)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	schedulerMetrics := metrics.NewSchedulerMetrics(registry)

	store := domain.NewStore()

	var (
		db   *gorm.DB
		repo domain.Repository
		sink audit.Sink = audit.NewZapSink(zl)
	)
	if cfg.DBUrl != "" {
		db, err = dbpkg.NewDB(cfg, zl)
		if err != nil {
			zl.Fatal("database unavailable", zap.Error(err))
		}
		gormRepo := infraRepo.NewAppointmentGormRepository(db)
		if err := store.Load(ctx, gormRepo); err != nil {
			zl.Fatal("failed to hydrate appointments", zap.Error(err))
		}
		repo = gormRepo
		sink = audit.New(db)
	} else {
		zl.Warn("DATABASE_URL not set, appointments live in memory only")
	}
	schedulerMetrics.SetStoreSize(store.Len())

	dispatcher := audit.NewDispatcher(sink, zl, audit.DefaultQueueSize).
		OnDrop(schedulerMetrics.AuditDropped)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			zl.Warn("redis ping failed, rate limiter will fail open", zap.Error(err))
		}
		defer rdb.Close()
	}

	ucDeps := ucAppointment.Deps{
		Store:    store,
		Repo:     repo,
		Schedule: cfg.Schedule,
		Audit:    dispatcher,
		Metrics:  schedulerMetrics,
		Log:      zl,
		Clock:    clock,
	}.WithDefaults()

	// ======================================================
	// JOBS
	// ======================================================
	scheduler := jobs.NewScheduler(zl)
	if cfg.AgendaCron != "" {
		digest := jobs.NewAgendaDigest(ucAppointment.NewListAgenda(ucDeps), dispatcher, clock, zl)
		if err := scheduler.Register(cfg.AgendaCron, digest); err != nil {
			zl.Fatal("invalid AGENDA_CRON", zap.Error(err))
		}
	}
	scheduler.Start()

	// ======================================================
	// HTTP
	// ======================================================
	if logger.IsProduction(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, routes.Dependencies{
		Config:   cfg,
		UseCases: ucDeps,
		Location: loc,
		DB:       db,
		Redis:    rdb,
		Gatherer: registry,
		Log:      zl,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("http shutdown", zap.Error(err))
	}
	if err := scheduler.Stop(shutdownCtx); err != nil {
		zl.Error("scheduler shutdown", zap.Error(err))
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		zl.Error("audit drain", zap.Error(err))
	}
}
