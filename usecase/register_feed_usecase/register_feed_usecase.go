// Package register_feed_usecase creates feed subscriptions after validating
// that the target URL serves a parseable feed.
package register_feed_usecase

import (
	"context"
	"strings"

	"feedhub/domain"
	"feedhub/port/feed_subscription_port"
	"feedhub/port/fetch_feed_port"
	appErrors "feedhub/utils/errors"
	"feedhub/utils/logger"
)

type RegisterFeedUsecase struct {
	fetchPort        fetch_feed_port.FetchFeedPort
	subscriptionPort feed_subscription_port.FeedSubscriptionPort
}

func NewRegisterFeedUsecase(fetchPort fetch_feed_port.FetchFeedPort, subscriptionPort feed_subscription_port.FeedSubscriptionPort) *RegisterFeedUsecase {
	return &RegisterFeedUsecase{
		fetchPort:        fetchPort,
		subscriptionPort: subscriptionPort,
	}
}

// Execute validates the URL end to end before anything is stored. A URL that
// cannot be fetched or parsed never becomes a subscription, so the timeline
// cannot accumulate permanently broken feeds through this path. A non-empty
// titleOverride wins over the title the feed declares.
func (u *RegisterFeedUsecase) Execute(ctx context.Context, ownerID, url string, titleOverride *string) (*domain.Feed, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, &appErrors.AppError{
			Code:    appErrors.ErrCodeValidation,
			Message: "feed URL is required",
			Cause:   domain.ErrMissingFeedURL,
		}
	}

	title, err := u.fetchPort.ValidateFeedURL(ctx, url)
	if err != nil {
		logger.Logger.Warn("feed URL validation failed", "url", url, "error", err)
		return nil, err
	}
	if titleOverride != nil && strings.TrimSpace(*titleOverride) != "" {
		title = strings.TrimSpace(*titleOverride)
	}

	feed, err := u.subscriptionPort.CreateFeed(ctx, ownerID, url, &title)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to create feed", err, map[string]interface{}{
			"owner_id": ownerID,
			"url":      url,
		})
	}

	logger.Logger.Info("feed registered", "owner_id", ownerID, "feed_id", feed.ID.String(), "url", url)

	return feed, nil
}
