package main

import (
	"context"
	"fmt"
	"time"

	"feedhub/config"
	"feedhub/di"
	"feedhub/driver/feed_db"
	"feedhub/rest"
	"feedhub/telemetry"
	"feedhub/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.InitLoggerWithLevel(cfg.Logging.Level)
	log.Info("Starting server")

	ctx := context.Background()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.Telemetry)
	if err != nil {
		logger.Logger.Error("Failed to initialize tracing", "error", err)
		panic(err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shut down tracing", "error", err)
		}
	}()

	pool, err := feed_db.InitDBPool(ctx, cfg.Database.MaxConnections, cfg.Database.ConnectionTimeout)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	e := echo.New()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Logger.Error("Error starting server", "error", err)
		panic(err)
	}
}
