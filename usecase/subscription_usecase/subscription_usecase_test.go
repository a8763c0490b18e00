package subscription_usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"feedhub/domain"
	"feedhub/mocks"
	appErrors "feedhub/utils/errors"
	"feedhub/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func initTestLogger() {
	var buf bytes.Buffer
	logger.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func TestSubscriptionUsecase_ListFeeds(t *testing.T) {
	initTestLogger()
	ctrl := gomock.NewController(t)
	subscriptions := mocks.NewMockFeedSubscriptionPort(ctrl)

	feeds := []*domain.Feed{
		{ID: uuid.New(), OwnerID: "owner-1", URL: "https://a.example.com/feed"},
	}
	subscriptions.EXPECT().ListFeeds(gomock.Any(), "owner-1").Return(feeds, nil)

	usecase := NewSubscriptionUsecase(subscriptions)
	got, err := usecase.ListFeeds(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Equal(t, feeds, got)
}

func TestSubscriptionUsecase_DeleteFeed(t *testing.T) {
	initTestLogger()

	t.Run("deletes an owned feed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subscriptions := mocks.NewMockFeedSubscriptionPort(ctrl)

		feedID := uuid.New()
		subscriptions.EXPECT().DeleteFeed(gomock.Any(), "owner-1", feedID).Return(nil)

		usecase := NewSubscriptionUsecase(subscriptions)
		require.NoError(t, usecase.DeleteFeed(context.Background(), "owner-1", feedID))
	})

	t.Run("not-found passes through for a 404 mapping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subscriptions := mocks.NewMockFeedSubscriptionPort(ctrl)

		feedID := uuid.New()
		subscriptions.EXPECT().DeleteFeed(gomock.Any(), "owner-1", feedID).Return(domain.ErrFeedNotFound)

		usecase := NewSubscriptionUsecase(subscriptions)
		err := usecase.DeleteFeed(context.Background(), "owner-1", feedID)
		require.ErrorIs(t, err, domain.ErrFeedNotFound)
	})

	t.Run("other storage failures become database errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subscriptions := mocks.NewMockFeedSubscriptionPort(ctrl)

		feedID := uuid.New()
		subscriptions.EXPECT().DeleteFeed(gomock.Any(), "owner-1", feedID).Return(errors.New("connection reset"))

		usecase := NewSubscriptionUsecase(subscriptions)
		err := usecase.DeleteFeed(context.Background(), "owner-1", feedID)

		appErr, ok := appErrors.AsAppError(err)
		require.True(t, ok)
		require.Equal(t, appErrors.ErrCodeDatabase, appErr.Code)
	})
}
