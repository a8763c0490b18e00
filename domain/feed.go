package domain

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Feed is a subscribed RSS/Atom source owned by exactly one user.
type Feed struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   string    `json:"-"`
	URL       string    `json:"url"`
	Title     *string   `json:"title,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayTitle returns the stored title, falling back to the URL's host for
// untitled feeds. The full URL is only used when the host cannot be parsed.
func (f *Feed) DisplayTitle() string {
	if f.Title != nil && *f.Title != "" {
		return *f.Title
	}
	if u, err := url.Parse(f.URL); err == nil && u.Host != "" {
		return u.Host
	}
	return f.URL
}

// RecommendedFeed is a curated subscription suggestion served to new users.
type RecommendedFeed struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}
