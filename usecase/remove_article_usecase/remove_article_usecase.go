// Package remove_article_usecase tombstones articles so they stay out of
// every future aggregation.
package remove_article_usecase

import (
	"context"

	"feedhub/domain"
	"feedhub/port/tombstone_port"
	appErrors "feedhub/utils/errors"
	"feedhub/utils/logger"
)

type RemoveArticleUsecase struct {
	tombstonePort tombstone_port.TombstonePort
}

func NewRemoveArticleUsecase(tombstonePort tombstone_port.TombstonePort) *RemoveArticleUsecase {
	return &RemoveArticleUsecase{tombstonePort: tombstonePort}
}

// Execute records a removal tombstone for the link. Removing the same link
// twice is a no-op, so retried requests succeed.
func (u *RemoveArticleUsecase) Execute(ctx context.Context, ownerID, link string) error {
	if link == "" {
		return &appErrors.AppError{
			Code:    appErrors.ErrCodeValidation,
			Message: "article link is required",
			Cause:   domain.ErrMissingLink,
		}
	}

	if err := u.tombstonePort.InsertTombstone(ctx, ownerID, link); err != nil {
		return appErrors.DatabaseError("failed to remove article", err, map[string]interface{}{
			"owner_id": ownerID,
			"link":     link,
		})
	}

	logger.Logger.Info("article removed", "owner_id", ownerID, "link", link)

	return nil
}
