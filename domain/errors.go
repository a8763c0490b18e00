package domain

import (
	"errors"
	"fmt"
)

var (
	// 認証・認可エラー
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidUserContext = errors.New("invalid user context")

	// フィード関連エラー
	ErrFeedNotFound   = errors.New("feed not found")
	ErrFeedInvalid    = errors.New("feed is invalid")
	ErrMissingFeedURL = errors.New("missing feed url")

	// 記事関連エラー
	ErrMissingLink   = errors.New("missing article link")
	ErrMissingFeedID = errors.New("missing feed id")
)

// FeedHTTPError represents an unexpected HTTP status from a feed server.
type FeedHTTPError struct {
	StatusCode int
	URL        string
}

func (e *FeedHTTPError) Error() string {
	return fmt.Sprintf("feed returned HTTP %d for %q", e.StatusCode, e.URL)
}
