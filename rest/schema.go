package rest

import (
	"time"

	"feedhub/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RegisterFeedRequest struct {
	URL   string  `json:"url"`
	Title *string `json:"title,omitempty"`
}

type FeedResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

func toFeedResponse(feed *domain.Feed) FeedResponse {
	return FeedResponse{
		ID:        feed.ID.String(),
		URL:       feed.URL,
		Title:     feed.DisplayTitle(),
		CreatedAt: feed.CreatedAt,
	}
}

// ArticlesResponse is one timeline page. Clients detect exhaustion by
// receiving fewer articles than they asked for.
type ArticlesResponse struct {
	Articles []*domain.ArticleItem `json:"articles"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"pageSize"`
}

// UpdateStateRequest carries one read/saved transition. The descriptive
// fields snapshot the article for the saved view and are ignored on updates
// of an existing row.
type UpdateStateRequest struct {
	Link      string     `json:"link"`
	FeedID    string     `json:"feedId"`
	Title     string     `json:"title"`
	Published *time.Time `json:"published"`
	Read      bool       `json:"read"`
	Saved     bool       `json:"saved"`
}

type BulkStateRequest struct {
	Links []string `json:"links"`
}

type BulkStateResponse struct {
	States map[string]domain.ArticleState `json:"states"`
}

type RemoveArticleRequest struct {
	Link string `json:"link"`
}
