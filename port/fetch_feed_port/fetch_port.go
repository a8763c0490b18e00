package fetch_feed_port

import (
	"context"

	"feedhub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetch_port.go -destination=../../mocks/mock_fetch_feed_port.go -package=mocks

// FetchFeedPort retrieves and normalizes a remote feed. FetchFeed errors are
// isolated per feed during aggregation; ValidateFeedURL errors gate
// subscription and are surfaced verbatim.
type FetchFeedPort interface {
	FetchFeed(ctx context.Context, feed *domain.Feed) ([]*domain.ArticleItem, error)
	ValidateFeedURL(ctx context.Context, url string) (string, error)
}
