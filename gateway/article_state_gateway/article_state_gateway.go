// Package article_state_gateway adapts article state persistence to the
// article state port.
package article_state_gateway

import (
	"context"

	"feedhub/domain"
	"feedhub/driver/feed_db"
	"feedhub/port/article_state_port"
)

type ArticleStateGateway struct {
	repo *feed_db.FeedDBRepository
}

var _ article_state_port.ArticleStatePort = (*ArticleStateGateway)(nil)

func NewArticleStateGateway(pool feed_db.DBPool) *ArticleStateGateway {
	return &ArticleStateGateway{repo: feed_db.NewFeedDBRepository(pool)}
}

func (g *ArticleStateGateway) GetStatesForLinks(ctx context.Context, ownerID string, links []string) (map[string]domain.ArticleState, error) {
	return g.repo.GetStatesForLinks(ctx, ownerID, links)
}

func (g *ArticleStateGateway) UpsertState(ctx context.Context, ownerID string, change domain.StateChange) (*domain.ArticleStateRow, error) {
	return g.repo.UpsertState(ctx, ownerID, change)
}

func (g *ArticleStateGateway) ListSavedArticles(ctx context.Context, ownerID string) ([]*domain.SavedArticle, error) {
	return g.repo.ListSavedArticles(ctx, ownerID)
}
