package feed_db

import (
	"context"
	"fmt"

	"feedhub/utils/logger"
)

// ListTombstones returns every link the owner has permanently removed from
// their timeline.
func (r *FeedDBRepository) ListTombstones(ctx context.Context, ownerID string) ([]string, error) {
	query := `SELECT link FROM removed_articles WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		logger.Logger.Error("Error listing tombstones", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("failed to list tombstones: %w", err)
	}
	defer rows.Close()

	links := make([]string, 0)
	for rows.Next() {
		var link string
		if err := rows.Scan(&link); err != nil {
			return nil, fmt.Errorf("failed to scan tombstone row: %w", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tombstone rows: %w", err)
	}

	return links, nil
}

// InsertTombstone records a removal. Duplicate inserts are a no-op so a
// double-click never surfaces a unique-key failure.
func (r *FeedDBRepository) InsertTombstone(ctx context.Context, ownerID, link string) error {
	query := `INSERT INTO removed_articles (user_id, link) VALUES ($1, $2) ON CONFLICT (user_id, link) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, ownerID, link); err != nil {
		logger.Logger.Error("Error inserting tombstone", "error", err, "owner_id", ownerID, "link", link)
		return fmt.Errorf("failed to insert tombstone: %w", err)
	}

	return nil
}
