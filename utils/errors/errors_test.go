package errors

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  ValidationError("page must be positive", nil),
			want: "VALIDATION_ERROR: page must be positive",
		},
		{
			name: "with cause",
			err:  ExternalAPIError("feed unreachable", errors.New("connection refused"), nil),
			want: "EXTERNAL_API_ERROR: feed unreachable (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("row not found")
	err := DatabaseError("query failed", cause, nil)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := AuthError("no resolvable owner", nil)
	wrapped := fmt.Errorf("handler: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("AsAppError should find the AppError in the chain")
	}
	if got.Code != ErrCodeAuth {
		t.Errorf("Code = %s, want %s", got.Code, ErrCodeAuth)
	}

	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Error("AsAppError should not match a plain error")
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	LogError(logger, ParseError("invalid feed payload", errors.New("bad xml"), map[string]interface{}{
		"url": "https://example.com/feed",
	}), "validate_feed")

	out := buf.String()
	for _, want := range []string{"PARSE_ERROR", "validate_feed", "https://example.com/feed", "bad xml"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}

	// nil logger must not panic
	LogError(nil, errors.New("x"), "noop")
}
