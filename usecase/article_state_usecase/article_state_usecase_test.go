package article_state_usecase

import (
	"context"
	"testing"
	"time"

	"feedhub/domain"
	"feedhub/mocks"
	appErrors "feedhub/utils/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestArticleStateUsecase_BulkGetStates(t *testing.T) {
	t.Run("returns stored states keyed by link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		statePort := mocks.NewMockArticleStatePort(ctrl)

		links := []string{"https://a/1", "https://a/2"}
		statePort.EXPECT().GetStatesForLinks(gomock.Any(), "owner-1", links).Return(map[string]domain.ArticleState{
			"https://a/1": {Read: true},
		}, nil)

		usecase := NewArticleStateUsecase(statePort)
		states, err := usecase.BulkGetStates(context.Background(), "owner-1", links)

		require.NoError(t, err)
		require.Len(t, states, 1)
		require.True(t, states["https://a/1"].Read)
	})

	t.Run("empty input skips storage entirely", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		statePort := mocks.NewMockArticleStatePort(ctrl)

		usecase := NewArticleStateUsecase(statePort)
		states, err := usecase.BulkGetStates(context.Background(), "owner-1", nil)

		require.NoError(t, err)
		require.Empty(t, states)
	})
}

func TestArticleStateUsecase_UpdateState(t *testing.T) {
	published := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	valid := domain.StateChange{
		Link:      "https://a/1",
		FeedID:    "feed-1",
		Title:     "T",
		Published: &published,
		Read:      true,
	}

	t.Run("persists a valid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		statePort := mocks.NewMockArticleStatePort(ctrl)

		row := &domain.ArticleStateRow{ID: uuid.New(), Read: true}
		statePort.EXPECT().UpsertState(gomock.Any(), "owner-1", valid).Return(row, nil)

		usecase := NewArticleStateUsecase(statePort)
		got, err := usecase.UpdateState(context.Background(), "owner-1", valid)

		require.NoError(t, err)
		require.Equal(t, row, got)
	})

	t.Run("missing link is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		statePort := mocks.NewMockArticleStatePort(ctrl)

		change := valid
		change.Link = ""

		usecase := NewArticleStateUsecase(statePort)
		_, err := usecase.UpdateState(context.Background(), "owner-1", change)

		require.ErrorIs(t, err, domain.ErrMissingLink)
	})

	t.Run("missing feed id is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		statePort := mocks.NewMockArticleStatePort(ctrl)

		change := valid
		change.FeedID = ""

		usecase := NewArticleStateUsecase(statePort)
		_, err := usecase.UpdateState(context.Background(), "owner-1", change)

		require.ErrorIs(t, err, domain.ErrMissingFeedID)
		appErr, ok := appErrors.AsAppError(err)
		require.True(t, ok)
		require.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})
}

func TestArticleStateUsecase_ListSavedArticles(t *testing.T) {
	ctrl := gomock.NewController(t)
	statePort := mocks.NewMockArticleStatePort(ctrl)

	saved := []*domain.SavedArticle{
		{FeedID: "feed-1", Title: "Kept", Link: "https://a/1", Saved: true},
	}
	statePort.EXPECT().ListSavedArticles(gomock.Any(), "owner-1").Return(saved, nil)

	usecase := NewArticleStateUsecase(statePort)
	got, err := usecase.ListSavedArticles(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Equal(t, saved, got)
}
