// Package article_state_usecase reconciles per-user read/saved flags with
// freshly aggregated timeline items.
package article_state_usecase

import (
	"context"

	"feedhub/domain"
	"feedhub/port/article_state_port"
	appErrors "feedhub/utils/errors"
)

type ArticleStateUsecase struct {
	statePort article_state_port.ArticleStatePort
}

func NewArticleStateUsecase(statePort article_state_port.ArticleStatePort) *ArticleStateUsecase {
	return &ArticleStateUsecase{statePort: statePort}
}

// BulkGetStates resolves read/saved flags for the given links. Links without
// a stored row are absent from the result; callers treat absence as unread
// and unsaved. Empty input returns immediately without a storage round-trip.
func (u *ArticleStateUsecase) BulkGetStates(ctx context.Context, ownerID string, links []string) (map[string]domain.ArticleState, error) {
	if len(links) == 0 {
		return map[string]domain.ArticleState{}, nil
	}

	states, err := u.statePort.GetStatesForLinks(ctx, ownerID, links)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to resolve article states", err, map[string]interface{}{
			"owner_id": ownerID,
			"links":    len(links),
		})
	}

	return states, nil
}

// UpdateState persists one read/saved transition. The descriptive fields of
// the change are only used when the row is first created.
func (u *ArticleStateUsecase) UpdateState(ctx context.Context, ownerID string, change domain.StateChange) (*domain.ArticleStateRow, error) {
	if change.Link == "" {
		return nil, &appErrors.AppError{
			Code:    appErrors.ErrCodeValidation,
			Message: "article link is required",
			Cause:   domain.ErrMissingLink,
		}
	}
	if change.FeedID == "" {
		return nil, &appErrors.AppError{
			Code:    appErrors.ErrCodeValidation,
			Message: "feed id is required",
			Cause:   domain.ErrMissingFeedID,
		}
	}

	row, err := u.statePort.UpsertState(ctx, ownerID, change)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to update article state", err, map[string]interface{}{
			"owner_id": ownerID,
			"link":     change.Link,
		})
	}

	return row, nil
}

func (u *ArticleStateUsecase) ListSavedArticles(ctx context.Context, ownerID string) ([]*domain.SavedArticle, error) {
	saved, err := u.statePort.ListSavedArticles(ctx, ownerID)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to list saved articles", err, map[string]interface{}{"owner_id": ownerID})
	}
	return saved, nil
}
