// Package client is a typed HTTP client for the feedhub API, plus the
// timeline merge logic consumers use to keep scroll position stable across
// refreshes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"feedhub/domain"
)

// Client talks to one feedhub server on behalf of one authenticated user.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// New builds a client for baseURL authenticating with the given bearer
// token. A nil httpClient falls back to a default with a sane timeout.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
	}
}

type articlesPage struct {
	Articles []*domain.ArticleItem `json:"articles"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"pageSize"`
}

type feedPayload struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// Feed is one subscription as the API reports it.
type Feed struct {
	ID        string
	URL       string
	Title     string
	CreatedAt time.Time
}

type bulkStatesResponse struct {
	States map[string]domain.ArticleState `json:"states"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned HTTP %d: %s", e.StatusCode, e.Message)
}

// Timeline fetches one aggregated timeline page.
func (c *Client) Timeline(ctx context.Context, page, pageSize int) ([]*domain.ArticleItem, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	var resp articlesPage
	if err := c.do(ctx, http.MethodGet, "/v1/articles?"+query.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// SavedArticles fetches the user's saved view.
func (c *Client) SavedArticles(ctx context.Context) ([]*domain.SavedArticle, error) {
	var saved []*domain.SavedArticle
	if err := c.do(ctx, http.MethodGet, "/v1/articles/saved", nil, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// UpdateState persists one read/saved transition.
func (c *Client) UpdateState(ctx context.Context, change domain.StateChange) (*domain.ArticleStateRow, error) {
	body := map[string]interface{}{
		"link":      change.Link,
		"feedId":    change.FeedID,
		"title":     change.Title,
		"published": change.Published,
		"read":      change.Read,
		"saved":     change.Saved,
	}

	var row domain.ArticleStateRow
	if err := c.do(ctx, http.MethodPost, "/v1/articles/state", body, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// BulkStates resolves read/saved flags for the given links. Links the server
// has no row for are absent from the result.
func (c *Client) BulkStates(ctx context.Context, links []string) (map[string]domain.ArticleState, error) {
	var resp bulkStatesResponse
	if err := c.do(ctx, http.MethodPost, "/v1/articles/state/bulk", map[string]interface{}{"links": links}, &resp); err != nil {
		return nil, err
	}
	return resp.States, nil
}

// RemoveArticle tombstones a link so it never reappears in the timeline.
func (c *Client) RemoveArticle(ctx context.Context, link string) error {
	return c.do(ctx, http.MethodPost, "/v1/articles/remove", map[string]interface{}{"link": link}, nil)
}

// ListFeeds returns the user's subscriptions, newest first.
func (c *Client) ListFeeds(ctx context.Context) ([]Feed, error) {
	var payload []feedPayload
	if err := c.do(ctx, http.MethodGet, "/v1/feeds", nil, &payload); err != nil {
		return nil, err
	}

	feeds := make([]Feed, 0, len(payload))
	for _, p := range payload {
		feeds = append(feeds, Feed(p))
	}
	return feeds, nil
}

// RegisterFeed subscribes to a feed URL after server-side validation.
func (c *Client) RegisterFeed(ctx context.Context, feedURL string) (*Feed, error) {
	var payload feedPayload
	if err := c.do(ctx, http.MethodPost, "/v1/feeds", map[string]interface{}{"url": feedURL}, &payload); err != nil {
		return nil, err
	}
	feed := Feed(payload)
	return &feed, nil
}

// DeleteFeed unsubscribes from a feed. Saved articles survive.
func (c *Client) DeleteFeed(ctx context.Context, feedID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/feeds/"+feedID, nil, nil)
}

// RecommendedFeeds returns the curated starter list.
func (c *Client) RecommendedFeeds(ctx context.Context) ([]domain.RecommendedFeed, error) {
	var recommended []domain.RecommendedFeed
	if err := c.do(ctx, http.MethodGet, "/v1/feeds/recommended", nil, &recommended); err != nil {
		return nil, err
	}
	return recommended, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var errResp struct {
			Error string `json:"error"`
		}
		message := string(payload)
		if json.Unmarshal(payload, &errResp) == nil && errResp.Error != "" {
			message = errResp.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
