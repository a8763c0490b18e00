package feed_db

import (
	"context"
	"fmt"
	"os"
	"time"

	"feedhub/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// InitDBPool connects to postgres using the DB_* environment variables.
// A local .env file is honored when present.
func InitDBPool(ctx context.Context, maxConns int, connectTimeout time.Duration) (*pgxpool.Pool, error) {
	if err := godotenv.Load(); err != nil {
		logger.Logger.Debug("no .env file loaded", "error", err)
	}

	poolConfig, err := pgxpool.ParseConfig(dbConnectionString())
	if err != nil {
		logger.Logger.Error("Failed to parse database config", "error", err)
		return nil, err
	}
	poolConfig.MaxConns = int32(maxConns)
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Logger.Error("Failed to ping database", "error", err)
		return nil, err
	}

	logger.Logger.Info("Connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}

func dbConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOrDefault("DB_HOST", "localhost"),
		envOrDefault("DB_PORT", "5432"),
		envOrDefault("DB_USER", "feedhub"),
		os.Getenv("DB_PASSWORD"),
		envOrDefault("DB_NAME", "feedhub"),
		envOrDefault("DB_SSL_MODE", "disable"),
	)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
