package domain

import (
	"time"

	"github.com/google/uuid"
)

// ArticleItem is the canonical in-memory representation of one feed entry.
// It is produced fresh on every aggregation call and never persisted.
//
// Link is the sole cross-request identity key and is treated as an opaque,
// exact-match string. No canonicalization (trailing slash, scheme, query
// order) is applied, so cosmetically different URLs stay distinct entities.
// Entries whose source declares no link keep an empty Link; they are shown
// but cannot be marked, saved or removed.
type ArticleItem struct {
	FeedID    string     `json:"feedId"`
	FeedTitle string     `json:"feedTitle"`
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Published *time.Time `json:"published"`
}

// PublishedOrZero sorts items with no publish date behind everything else.
func (a *ArticleItem) PublishedOrZero() time.Time {
	if a.Published == nil {
		return time.Time{}
	}
	return *a.Published
}

// ArticleState holds the per-user read/saved flags for one link.
type ArticleState struct {
	Read  bool `json:"read"`
	Saved bool `json:"saved"`
}

// ArticleStateRow is the persisted form of ArticleState returned by upserts.
type ArticleStateRow struct {
	ID    uuid.UUID `json:"id"`
	Read  bool      `json:"read"`
	Saved bool      `json:"saved"`
}

// StateChange carries one user-initiated state transition. Title, FeedID and
// Published are a descriptive snapshot captured only when the row is first
// created; updates never overwrite them.
type StateChange struct {
	Link      string
	FeedID    string
	Title     string
	Published *time.Time
	Read      bool
	Saved     bool
}

// SavedArticle is one entry of the saved-articles view. It is built from the
// snapshot stored at state-change time, so it outlives unsubscription and
// feeds that no longer fetch.
type SavedArticle struct {
	FeedID    string     `json:"feedId"`
	FeedTitle string     `json:"feedTitle"`
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Published *time.Time `json:"published"`
	Saved     bool       `json:"saved"`
}
