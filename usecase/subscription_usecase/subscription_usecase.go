// Package subscription_usecase lists and removes feed subscriptions.
package subscription_usecase

import (
	"context"
	"errors"

	"feedhub/domain"
	"feedhub/port/feed_subscription_port"
	appErrors "feedhub/utils/errors"
	"feedhub/utils/logger"

	"github.com/google/uuid"
)

type SubscriptionUsecase struct {
	subscriptionPort feed_subscription_port.FeedSubscriptionPort
}

func NewSubscriptionUsecase(subscriptionPort feed_subscription_port.FeedSubscriptionPort) *SubscriptionUsecase {
	return &SubscriptionUsecase{subscriptionPort: subscriptionPort}
}

func (u *SubscriptionUsecase) ListFeeds(ctx context.Context, ownerID string) ([]*domain.Feed, error) {
	feeds, err := u.subscriptionPort.ListFeeds(ctx, ownerID)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to list feeds", err, map[string]interface{}{"owner_id": ownerID})
	}
	return feeds, nil
}

// DeleteFeed removes one subscription. Previously saved articles keep their
// stored snapshots, so unsubscribing never touches the articles table.
func (u *SubscriptionUsecase) DeleteFeed(ctx context.Context, ownerID string, feedID uuid.UUID) error {
	err := u.subscriptionPort.DeleteFeed(ctx, ownerID, feedID)
	if err != nil {
		if errors.Is(err, domain.ErrFeedNotFound) {
			return err
		}
		return appErrors.DatabaseError("failed to delete feed", err, map[string]interface{}{
			"owner_id": ownerID,
			"feed_id":  feedID.String(),
		})
	}

	logger.Logger.Info("feed unsubscribed", "owner_id", ownerID, "feed_id", feedID.String())

	return nil
}
