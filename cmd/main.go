package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adrelay/internal/adapter/http"
	"adrelay/internal/adapter/postgres"
	"adrelay/internal/adapter/usecase"
	"adrelay/internal/billing"
	"adrelay/internal/config"
	"adrelay/internal/core/domain"
	"adrelay/internal/db"
)

// main is the entry point of the adrelay service. It loads configuration,
// optionally runs database migrations and seeding, initializes the database
// pool and repositories, starts the billing scheduler and the HTTP server.
// On receiving a termination signal it gracefully shuts everything down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialise structured logger based on configuration.
	logger := slog.New(cfg.Log.Handler(os.Stdout))

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	repo := postgres.NewContentRepository(pool)
	contentSvc := usecase.NewContentService(repo)
	pricer := usecase.NewFixedPricer(cfg.Billing.ImpressionPrice, cfg.Billing.Currency)
	billingSvc := usecase.NewBillingService(repo, pricer, logger)

	var scheduler *billing.Scheduler
	if cfg.Billing.ScheduleEnabled {
		scheduler = billing.NewScheduler(billingSvc, logger)
		specs := map[domain.PaymentInterval]string{
			domain.IntervalMonthly:   cfg.Billing.MonthlyCron,
			domain.IntervalQuarterly: cfg.Billing.QuarterlyCron,
			domain.IntervalYearly:    cfg.Billing.YearlyCron,
		}
		for _, interval := range domain.Intervals() {
			if err = scheduler.Register(interval, specs[interval]); err != nil {
				logger.Error("scheduler registration error",
					slog.String("interval", string(interval)),
					slog.Any("error", err))
				os.Exit(1)
			}
		}
		scheduler.Start()
		defer scheduler.Stop()
		logger.Info("billing scheduler started")
	}

	handler := httpadapter.NewHandler(contentSvc, billingSvc, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	// the signal context is already cancelled at this point; shutdown gets
	// its own deadline
	sdCtx, sdCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer sdCancel()
	if err = srv.Shutdown(sdCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
