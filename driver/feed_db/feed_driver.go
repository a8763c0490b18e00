package feed_db

import (
	"context"
	"fmt"

	"feedhub/domain"
	"feedhub/utils/logger"

	"github.com/google/uuid"
)

// ListFeeds returns the owner's subscriptions, newest first.
func (r *FeedDBRepository) ListFeeds(ctx context.Context, ownerID string) ([]*domain.Feed, error) {
	query := `SELECT id, url, title, created_at FROM feeds WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		logger.Logger.Error("Error listing feeds", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("failed to list feeds: %w", err)
	}
	defer rows.Close()

	feeds := make([]*domain.Feed, 0)
	for rows.Next() {
		feed := &domain.Feed{OwnerID: ownerID}
		if err := rows.Scan(&feed.ID, &feed.URL, &feed.Title, &feed.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feed row: %w", err)
		}
		feeds = append(feeds, feed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feed rows: %w", err)
	}

	return feeds, nil
}

// CreateFeed inserts a validated subscription. (owner, url) uniqueness is not
// enforced; a duplicate subscription degrades to duplicate timeline items.
func (r *FeedDBRepository) CreateFeed(ctx context.Context, ownerID, url string, title *string) (*domain.Feed, error) {
	query := `INSERT INTO feeds (user_id, url, title) VALUES ($1, $2, $3) RETURNING id, created_at`

	feed := &domain.Feed{OwnerID: ownerID, URL: url, Title: title}
	if err := r.pool.QueryRow(ctx, query, ownerID, url, title).Scan(&feed.ID, &feed.CreatedAt); err != nil {
		logger.Logger.Error("Error creating feed", "error", err, "owner_id", ownerID, "url", url)
		return nil, fmt.Errorf("failed to create feed: %w", err)
	}

	logger.Logger.Info("feed subscription created", "owner_id", ownerID, "feed_id", feed.ID, "url", url)

	return feed, nil
}

// DeleteFeed removes a subscription. Article state and tombstone rows are
// left in place so saved articles survive unsubscription.
func (r *FeedDBRepository) DeleteFeed(ctx context.Context, ownerID string, feedID uuid.UUID) error {
	query := `DELETE FROM feeds WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, feedID, ownerID)
	if err != nil {
		logger.Logger.Error("Error deleting feed", "error", err, "owner_id", ownerID, "feed_id", feedID)
		return fmt.Errorf("failed to delete feed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedNotFound
	}

	return nil
}