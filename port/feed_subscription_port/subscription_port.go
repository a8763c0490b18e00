package feed_subscription_port

import (
	"context"

	"feedhub/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=subscription_port.go -destination=../../mocks/mock_feed_subscription_port.go -package=mocks

type FeedSubscriptionPort interface {
	ListFeeds(ctx context.Context, ownerID string) ([]*domain.Feed, error)
	CreateFeed(ctx context.Context, ownerID, url string, title *string) (*domain.Feed, error)
	DeleteFeed(ctx context.Context, ownerID string, feedID uuid.UUID) error
}
