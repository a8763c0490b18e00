package article_state_port

import (
	"context"

	"feedhub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=state_port.go -destination=../../mocks/mock_article_state_port.go -package=mocks

// ArticleStatePort resolves and persists per-user read/saved flags keyed by
// (owner, link). Links never acted upon are absent from bulk lookup results.
type ArticleStatePort interface {
	GetStatesForLinks(ctx context.Context, ownerID string, links []string) (map[string]domain.ArticleState, error)
	UpsertState(ctx context.Context, ownerID string, change domain.StateChange) (*domain.ArticleStateRow, error)
	ListSavedArticles(ctx context.Context, ownerID string) ([]*domain.SavedArticle, error)
}
