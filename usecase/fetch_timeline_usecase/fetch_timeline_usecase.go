// Package fetch_timeline_usecase builds the aggregated article timeline at
// request time. Nothing it produces is persisted; every call fetches the
// owner's feeds fresh and reassembles the view.
package fetch_timeline_usecase

import (
	"context"
	"sort"

	"feedhub/config"
	"feedhub/domain"
	"feedhub/port/feed_subscription_port"
	"feedhub/port/fetch_feed_port"
	"feedhub/port/tombstone_port"
	appErrors "feedhub/utils/errors"
	"feedhub/utils/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

type FetchTimelineUsecase struct {
	subscriptionPort feed_subscription_port.FeedSubscriptionPort
	tombstonePort    tombstone_port.TombstonePort
	fetchPort        fetch_feed_port.FetchFeedPort
	cfg              config.AggregateConfig
}

func NewFetchTimelineUsecase(
	subscriptionPort feed_subscription_port.FeedSubscriptionPort,
	tombstonePort tombstone_port.TombstonePort,
	fetchPort fetch_feed_port.FetchFeedPort,
	cfg config.AggregateConfig,
) *FetchTimelineUsecase {
	return &FetchTimelineUsecase{
		subscriptionPort: subscriptionPort,
		tombstonePort:    tombstonePort,
		fetchPort:        fetchPort,
		cfg:              cfg,
	}
}

// Execute aggregates the owner's subscribed feeds into one timeline page.
//
// Feeds are fetched concurrently with a bounded fan-out. A feed that fails to
// fetch or parse contributes nothing and never fails the whole call; the
// timeline degrades to whatever the remaining feeds produced. Tombstoned
// links are dropped, the merged list is ordered newest-first with undated
// items last, and only then is the page window cut.
func (u *FetchTimelineUsecase) Execute(ctx context.Context, ownerID string, page, pageSize int) ([]*domain.ArticleItem, error) {
	if page < 1 {
		return nil, &appErrors.AppError{
			Code:    appErrors.ErrCodeValidation,
			Message: "page must be 1 or greater",
			Context: map[string]interface{}{"page": page},
		}
	}
	if pageSize < 1 {
		return nil, &appErrors.AppError{
			Code:    appErrors.ErrCodeValidation,
			Message: "pageSize must be 1 or greater",
			Context: map[string]interface{}{"page_size": pageSize},
		}
	}
	if pageSize > u.cfg.MaxPageSize {
		pageSize = u.cfg.MaxPageSize
	}

	tracer := otel.Tracer("feedhub/usecase")
	ctx, span := tracer.Start(ctx, "timeline.aggregate", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	feeds, err := u.subscriptionPort.ListFeeds(ctx, ownerID)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to list feeds", err, map[string]interface{}{"owner_id": ownerID})
	}
	if len(feeds) == 0 {
		return []*domain.ArticleItem{}, nil
	}

	tombstones, err := u.tombstonePort.ListTombstones(ctx, ownerID)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to list removed articles", err, map[string]interface{}{"owner_id": ownerID})
	}
	removed := make(map[string]struct{}, len(tombstones))
	for _, link := range tombstones {
		removed[link] = struct{}{}
	}

	span.SetAttributes(
		attribute.Int("feeds.count", len(feeds)),
		attribute.Int("tombstones.count", len(tombstones)),
	)

	perFeed := u.fetchAll(ctx, feeds)

	items := make([]*domain.ArticleItem, 0)
	for _, feedItems := range perFeed {
		for _, item := range feedItems {
			if _, gone := removed[item.Link]; gone {
				continue
			}
			items = append(items, item)
		}
	}

	// Stable sort keeps the per-feed order for items sharing a timestamp.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedOrZero().After(items[j].PublishedOrZero())
	})

	span.SetAttributes(attribute.Int("items.count", len(items)))

	return pageWindow(items, page, pageSize), nil
}

// fetchAll fans out one fetch per feed, bounded by the configured
// concurrency, and returns results indexed by feed position. Failed feeds
// leave a nil slot.
func (u *FetchTimelineUsecase) fetchAll(ctx context.Context, feeds []*domain.Feed) [][]*domain.ArticleItem {
	results := make([][]*domain.ArticleItem, len(feeds))

	g := &errgroup.Group{}
	g.SetLimit(u.cfg.MaxConcurrency)

	for i, feed := range feeds {
		g.Go(func() error {
			feedCtx, cancel := context.WithTimeout(ctx, u.cfg.FeedTimeout)
			defer cancel()

			items, err := u.fetchPort.FetchFeed(feedCtx, feed)
			if err != nil {
				logger.Logger.Warn("feed fetch failed, continuing without it",
					"feed_id", feed.ID.String(),
					"url", feed.URL,
					"error", err)
				return nil
			}
			results[i] = items
			return nil
		})
	}

	// Goroutines swallow their errors, so Wait only synchronizes.
	_ = g.Wait()

	return results
}

func pageWindow(items []*domain.ArticleItem, page, pageSize int) []*domain.ArticleItem {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []*domain.ArticleItem{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
