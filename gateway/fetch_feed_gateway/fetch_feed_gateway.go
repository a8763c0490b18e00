// Package fetch_feed_gateway retrieves remote feeds over HTTP and normalizes
// their entries for aggregation.
package fetch_feed_gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"feedhub/domain"
	"feedhub/port/fetch_feed_port"
	appErrors "feedhub/utils/errors"
	"feedhub/utils/logger"
	"feedhub/utils/metrics"
	"feedhub/utils/rate_limiter"

	"github.com/mmcdole/gofeed"
)

// Feed payloads above this size are rejected before parsing.
const maxFeedBodyBytes = 10 << 20

type FetchFeedGateway struct {
	client  *http.Client
	limiter *rate_limiter.HostRateLimiter
	metrics *metrics.FeedFetchMetrics
}

var _ fetch_feed_port.FetchFeedPort = (*FetchFeedGateway)(nil)

func NewFetchFeedGateway(client *http.Client, limiter *rate_limiter.HostRateLimiter, fetchMetrics *metrics.FeedFetchMetrics) *FetchFeedGateway {
	return &FetchFeedGateway{
		client:  client,
		limiter: limiter,
		metrics: fetchMetrics,
	}
}

// FetchFeed downloads and parses one subscribed feed, returning its entries
// tagged with the subscription's identity. Entries without a link are kept
// with an empty Link; they render but cannot be marked, saved or removed.
func (g *FetchFeedGateway) FetchFeed(ctx context.Context, feed *domain.Feed) ([]*domain.ArticleItem, error) {
	start := time.Now()

	parsed, err := g.fetchAndParse(ctx, feed.URL)
	if err != nil {
		g.metrics.RecordFailure(time.Since(start))
		return nil, err
	}
	g.metrics.RecordSuccess(time.Since(start))

	feedTitle := feed.DisplayTitle()
	items := make([]*domain.ArticleItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		items = append(items, &domain.ArticleItem{
			FeedID:    feed.ID.String(),
			FeedTitle: feedTitle,
			Title:     item.Title,
			Link:      item.Link,
			Published: publishedAt(item),
		})
	}

	logger.Logger.Info("feed fetched",
		"feed_id", feed.ID.String(),
		"url", feed.URL,
		"items", len(items),
		"duration_ms", time.Since(start).Milliseconds())

	return items, nil
}

// ValidateFeedURL confirms that url points at a parseable feed before a
// subscription is created. It returns a display title for the feed, falling
// back to the URL host when the feed declares none.
func (g *FetchFeedGateway) ValidateFeedURL(ctx context.Context, rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", appErrors.ValidationError("invalid feed URL", map[string]interface{}{"url": rawURL})
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", appErrors.ValidationError("feed URL must use http or https", map[string]interface{}{"url": rawURL})
	}
	if parsedURL.Host == "" {
		return "", appErrors.ValidationError("feed URL is missing a host", map[string]interface{}{"url": rawURL})
	}

	parsed, err := g.fetchAndParse(ctx, rawURL)
	if err != nil {
		return "", err
	}

	title := parsed.Title
	if title == "" {
		title = parsedURL.Host
	}

	return title, nil
}

func (g *FetchFeedGateway) fetchAndParse(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	if err := g.limiter.WaitForHost(ctx, feedURL); err != nil {
		return nil, appErrors.ExternalAPIError("rate limit wait aborted", err, map[string]interface{}{"url": feedURL})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, appErrors.ValidationError("invalid feed URL", map[string]interface{}{"url": feedURL})
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, appErrors.ExternalAPIError("failed to fetch feed", err, map[string]interface{}{"url": feedURL})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &domain.FeedHTTPError{StatusCode: resp.StatusCode, URL: feedURL}
		return nil, appErrors.ExternalAPIError("feed host returned an error status", httpErr, map[string]interface{}{
			"url":    feedURL,
			"status": resp.StatusCode,
		})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBodyBytes+1))
	if err != nil {
		return nil, appErrors.ExternalAPIError("failed to read feed body", err, map[string]interface{}{"url": feedURL})
	}
	if len(body) > maxFeedBodyBytes {
		return nil, appErrors.ParseError("feed body exceeds size limit", fmt.Errorf("body larger than %d bytes", maxFeedBodyBytes), map[string]interface{}{"url": feedURL})
	}

	parsed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return nil, appErrors.ParseError("failed to parse feed", err, map[string]interface{}{"url": feedURL})
	}

	return parsed, nil
}

// publishedAt prefers the item's publish date and falls back to its update
// date. Entries declaring neither keep a nil timestamp so aggregation can
// sort them last.
func publishedAt(item *gofeed.Item) *time.Time {
	if item.PublishedParsed != nil {
		t := item.PublishedParsed.UTC()
		return &t
	}
	if item.UpdatedParsed != nil {
		t := item.UpdatedParsed.UTC()
		return &t
	}
	return nil
}
