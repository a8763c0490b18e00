// Package feed_subscription_gateway adapts feed subscription persistence to
// the subscription port.
package feed_subscription_gateway

import (
	"context"

	"feedhub/domain"
	"feedhub/driver/feed_db"
	"feedhub/port/feed_subscription_port"

	"github.com/google/uuid"
)

type FeedSubscriptionGateway struct {
	repo *feed_db.FeedDBRepository
}

var _ feed_subscription_port.FeedSubscriptionPort = (*FeedSubscriptionGateway)(nil)

func NewFeedSubscriptionGateway(pool feed_db.DBPool) *FeedSubscriptionGateway {
	return &FeedSubscriptionGateway{repo: feed_db.NewFeedDBRepository(pool)}
}

func (g *FeedSubscriptionGateway) ListFeeds(ctx context.Context, ownerID string) ([]*domain.Feed, error) {
	return g.repo.ListFeeds(ctx, ownerID)
}

func (g *FeedSubscriptionGateway) CreateFeed(ctx context.Context, ownerID, url string, title *string) (*domain.Feed, error) {
	return g.repo.CreateFeed(ctx, ownerID, url, title)
}

func (g *FeedSubscriptionGateway) DeleteFeed(ctx context.Context, ownerID string, feedID uuid.UUID) error {
	return g.repo.DeleteFeed(ctx, ownerID, feedID)
}
