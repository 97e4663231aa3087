package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"mise/config"
	"mise/di"
	"mise/driver/mise_db"
	"mise/job"
	"mise/rest"
	"mise/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	log := logger.InitLogger()
	log.Info("Starting search server")

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := mise_db.InitDBConnection(ctx, cfg)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	container.AnalyticsWorker.Start(ctx)
	defer container.AnalyticsWorker.Stop()

	scheduler := job.NewJobScheduler()
	scheduler.Add(job.Job{
		Name:     "warm-trending",
		Interval: cfg.Cache.TrendingExpiry,
		Timeout:  cfg.Database.QueryTimeout,
		Fn:       job.TrendWarmerJob(container.TrendingUsecase),
	})
	scheduler.Start(ctx)
	defer scheduler.Shutdown()

	e := echo.New()
	rest.RegisterRoutes(e, container, cfg)

	go func() {
		<-ctx.Done()
		logger.Logger.Info("Shutting down server")
		if err := e.Shutdown(context.Background()); err != nil {
			logger.Logger.Error("Error shutting down server", "error", err)
		}
	}()

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Logger.Error("Server stopped", "error", err)
	}
}
