package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

func InitLogger() *slog.Logger {
	return InitLoggerWithLevel(os.Getenv("LOG_LEVEL"))
}

func InitLoggerWithLevel(level string) *slog.Logger {
	config := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	Logger = slog.New(slog.NewJSONHandler(os.Stdout, config))
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized")

	return Logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
