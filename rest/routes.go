package rest

import (
	"net/http"

	"feedhub/config"
	"feedhub/di"
	custommiddleware "feedhub/middleware"
	"feedhub/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// Request ID first so every later log line can carry it
	e.Use(custommiddleware.RequestIDMiddleware())

	e.Use(middleware.Recover())

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Authorization", "X-Request-ID"},
	}))

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
	}))

	e.Use(custommiddleware.LoggingMiddleware(logger.Logger))

	e.Use(middleware.Gzip())

	authMiddleware := custommiddleware.NewAuthMiddleware(logger.Logger, cfg)

	v1 := e.Group("/v1")
	v1.GET("/health", handleHealth())

	registerFeedRoutes(v1, container, authMiddleware)
	registerArticleRoutes(v1, container, cfg, authMiddleware)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(container.MetricsRegistry, promhttp.HandlerOpts{})))
}

func handleHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, MessageResponse{Message: "ok"})
	}
}
