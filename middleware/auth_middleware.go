package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"feedhub/config"
	"feedhub/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var (
	errMissingToken    = errors.New("missing bearer token")
	errInvalidToken    = errors.New("invalid bearer token")
	errInvalidClaims   = errors.New("invalid claims")
	errInvalidIssuer   = errors.New("invalid issuer")
	errInvalidAudience = errors.New("invalid audience")
)

// SessionClaims are the JWT claims issued by the session service. The
// subject is the owner id every protected operation is scoped to.
type SessionClaims struct {
	Email string `json:"email"`
	Sid   string `json:"sid"`
	jwt.RegisteredClaims
}

// AuthMiddleware resolves the request owner from a bearer token. Requests
// with no resolvable owner are rejected before any handler runs.
type AuthMiddleware struct {
	logger   *slog.Logger
	secret   []byte
	issuer   string
	audience string
}

func NewAuthMiddleware(logger *slog.Logger, cfg *config.Config) *AuthMiddleware {
	secret := []byte(cfg.Auth.TokenSecret)
	if len(secret) == 0 && logger != nil {
		logger.Warn("AUTH_TOKEN_SECRET not set, auth will deny all requests")
	}

	return &AuthMiddleware{
		logger:   logger,
		secret:   secret,
		issuer:   cfg.Auth.TokenIssuer,
		audience: cfg.Auth.TokenAudience,
	}
}

// RequireAuth ensures a valid token is present and stores the resolved
// owner identity on the request context.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userCtx, err := m.validateToken(c)
			if err != nil {
				switch {
				case errors.Is(err, errMissingToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
				case errors.Is(err, errInvalidToken), errors.Is(err, errInvalidClaims):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token")
				case errors.Is(err, errInvalidIssuer), errors.Is(err, errInvalidAudience):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token issuer or audience")
				default:
					if m.logger != nil {
						m.logger.Error("token validation error", "error", err)
					}
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
				}
			}

			ctx := domain.SetUserContext(c.Request().Context(), userCtx)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func (m *AuthMiddleware) validateToken(c echo.Context) (*domain.UserContext, error) {
	tokenStr := bearerToken(c.Request())
	if tokenStr == "" {
		return nil, errMissingToken
	}

	if len(m.secret) == 0 {
		return nil, fmt.Errorf("token secret not configured")
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, errInvalidIssuer
		case errors.Is(err, jwt.ErrTokenInvalidAudience):
			return nil, errInvalidAudience
		default:
			return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
		}
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, errInvalidClaims
	}
	if claims.Subject == "" {
		return nil, errInvalidClaims
	}

	userCtx := &domain.UserContext{
		UserID:    claims.Subject,
		Email:     claims.Email,
		SessionID: claims.Sid,
	}
	if claims.ExpiresAt != nil {
		userCtx.ExpiresAt = claims.ExpiresAt.Time
	}

	return userCtx, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}
