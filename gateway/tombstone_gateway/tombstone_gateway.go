// Package tombstone_gateway adapts removed-article persistence to the
// tombstone port.
package tombstone_gateway

import (
	"context"

	"feedhub/driver/feed_db"
	"feedhub/port/tombstone_port"
)

type TombstoneGateway struct {
	repo *feed_db.FeedDBRepository
}

var _ tombstone_port.TombstonePort = (*TombstoneGateway)(nil)

func NewTombstoneGateway(pool feed_db.DBPool) *TombstoneGateway {
	return &TombstoneGateway{repo: feed_db.NewFeedDBRepository(pool)}
}

func (g *TombstoneGateway) ListTombstones(ctx context.Context, ownerID string) ([]string, error) {
	return g.repo.ListTombstones(ctx, ownerID)
}

func (g *TombstoneGateway) InsertTombstone(ctx context.Context, ownerID, link string) error {
	return g.repo.InsertTombstone(ctx, ownerID, link)
}
