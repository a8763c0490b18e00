package rest

import (
	stderrors "errors"
	"net/http"

	"feedhub/domain"
	"feedhub/utils/errors"
	"feedhub/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to HTTP responses. Domain sentinels are checked
// first so gateways can signal not-found and auth conditions without knowing
// about HTTP.
func handleError(c echo.Context, err error, operation string) error {
	logger.Logger.Error("handler error",
		"error", err,
		"operation", operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"request_id", c.Response().Header().Get("X-Request-ID"),
	)

	switch {
	case stderrors.Is(err, domain.ErrFeedNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "feed not found"})
	case stderrors.Is(err, domain.ErrUnauthorized), stderrors.Is(err, domain.ErrInvalidUserContext):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	if appErr, ok := errors.AsAppError(err); ok {
		return c.JSON(httpStatusForCode(appErr.Code), ErrorResponse{
			Error: appErr.Message,
			Code:  string(appErr.Code),
		})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func httpStatusForCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeValidation:
		return http.StatusBadRequest
	case errors.ErrCodeAuth:
		return http.StatusUnauthorized
	case errors.ErrCodeParse:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeExternalAPI:
		return http.StatusBadGateway
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// handleValidationError rejects malformed input before any usecase runs.
func handleValidationError(c echo.Context, message, field string, value interface{}) error {
	logger.Logger.Warn("request validation failed",
		"message", message,
		"field", field,
		"value", value,
		"path", c.Request().URL.Path,
	)

	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: message,
		Code:  string(errors.ErrCodeValidation),
	})
}

// ownerID resolves the authenticated owner for the request. The auth
// middleware guarantees presence on protected routes; absence means a wiring
// bug, surfaced as 401.
func ownerID(c echo.Context) (string, error) {
	user, err := domain.GetUserFromContext(c.Request().Context())
	if err != nil {
		return "", err
	}
	return user.UserID, nil
}
