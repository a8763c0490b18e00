package domain

import (
	"context"
	"fmt"
	"time"
)

// UserContext represents the authenticated owner identity for a request.
// It is resolved once by the auth middleware and threaded explicitly through
// every core call; no component reads an ambient/global session.
type UserContext struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsValid checks if the user context carries a resolvable owner and has not expired.
func (uc *UserContext) IsValid() bool {
	return uc.UserID != "" && uc.ExpiresAt.After(time.Now())
}

// コンテキストキー
type contextKey string

const UserContextKey contextKey = "user_context"

// ヘルパー関数
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, fmt.Errorf("user context not found: %w", ErrUnauthorized)
	}

	if !user.IsValid() {
		return nil, fmt.Errorf("%w: expired or missing owner id", ErrInvalidUserContext)
	}

	return user, nil
}

func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
