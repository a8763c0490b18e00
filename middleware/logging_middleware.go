package middleware

import (
	"log/slog"
	"time"

	"feedhub/utils/logger"

	"github.com/labstack/echo/v4"
)

func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()

			// Skip logging for health check endpoint to reduce noise
			if req.URL.Path == "/v1/health" {
				return next(c)
			}
			ctx := req.Context()

			contextLogger.WithContext(ctx).Info("request started",
				"method", req.Method,
				"path", req.URL.Path,
				"remote_addr", c.RealIP(),
				"user_agent", req.UserAgent(),
			)

			err := next(c)

			duration := time.Since(start)
			res := c.Response()
			status := res.Status
			size := res.Size

			logAttrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", duration.Milliseconds(),
				"response_size", size,
			}
			if status >= 500 {
				contextLogger.WithContext(ctx).Error("request completed", logAttrs...)
			} else if status >= 400 {
				contextLogger.WithContext(ctx).Warn("request completed", logAttrs...)
			} else {
				contextLogger.WithContext(ctx).Info("request completed", logAttrs...)
			}

			if err != nil {
				contextLogger.WithContext(ctx).Error("request error",
					"method", req.Method,
					"path", req.URL.Path,
					"error", err,
					"duration_ms", duration.Milliseconds(),
				)
			}

			return err
		}
	}
}
