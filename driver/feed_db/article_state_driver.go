package feed_db

import (
	"context"
	"fmt"

	"feedhub/domain"
	"feedhub/utils/logger"
)

// GetStatesForLinks bulk-resolves read/saved flags for a set of links.
// Links never acted upon are absent from the result map; callers apply their
// own false/false default. Empty input returns an empty map without touching
// storage.
func (r *FeedDBRepository) GetStatesForLinks(ctx context.Context, ownerID string, links []string) (map[string]domain.ArticleState, error) {
	states := make(map[string]domain.ArticleState)
	if len(links) == 0 {
		return states, nil
	}

	query := `SELECT link, read, saved FROM articles WHERE user_id = $1 AND link = ANY($2)`

	rows, err := r.pool.Query(ctx, query, ownerID, links)
	if err != nil {
		logger.Logger.Error("Error querying article states", "error", err, "owner_id", ownerID, "links", len(links))
		return nil, fmt.Errorf("failed to query article states: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var link string
		var state domain.ArticleState
		if err := rows.Scan(&link, &state.Read, &state.Saved); err != nil {
			return nil, fmt.Errorf("failed to scan article state row: %w", err)
		}
		states[link] = state
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read article state rows: %w", err)
	}

	return states, nil
}

// UpsertState persists one state transition atomically. The first write for
// (owner, link) captures the descriptive snapshot; later writes only touch
// the read/saved flags.
func (r *FeedDBRepository) UpsertState(ctx context.Context, ownerID string, change domain.StateChange) (*domain.ArticleStateRow, error) {
	query := `
		INSERT INTO articles (user_id, feed_id, link, title, published_at, read, saved)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, link) DO UPDATE SET read = $6, saved = $7
		RETURNING id, read, saved
	`

	row := &domain.ArticleStateRow{}
	err := r.pool.QueryRow(ctx, query,
		ownerID, change.FeedID, change.Link, change.Title, change.Published, change.Read, change.Saved,
	).Scan(&row.ID, &row.Read, &row.Saved)
	if err != nil {
		logger.Logger.Error("Error upserting article state",
			"error", err,
			"owner_id", ownerID,
			"link", change.Link)
		return nil, fmt.Errorf("failed to upsert article state: %w", err)
	}

	logger.Logger.Info("article state updated",
		"owner_id", ownerID,
		"link", change.Link,
		"read", row.Read,
		"saved", row.Saved)

	return row, nil
}

// ListSavedArticles builds the saved view from state-row snapshots, so it
// works even when the owning feed is gone or no longer fetches.
func (r *FeedDBRepository) ListSavedArticles(ctx context.Context, ownerID string) ([]*domain.SavedArticle, error) {
	query := `
		SELECT a.feed_id, COALESCE(f.title, ''), a.title, a.link, a.published_at, a.saved
		FROM articles a
		LEFT JOIN feeds f ON f.id = a.feed_id
		WHERE a.user_id = $1 AND a.saved
		ORDER BY a.published_at DESC NULLS LAST
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		logger.Logger.Error("Error listing saved articles", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("failed to list saved articles: %w", err)
	}
	defer rows.Close()

	saved := make([]*domain.SavedArticle, 0)
	for rows.Next() {
		article := &domain.SavedArticle{}
		if err := rows.Scan(&article.FeedID, &article.FeedTitle, &article.Title, &article.Link, &article.Published, &article.Saved); err != nil {
			return nil, fmt.Errorf("failed to scan saved article row: %w", err)
		}
		saved = append(saved, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read saved article rows: %w", err)
	}

	return saved, nil
}
