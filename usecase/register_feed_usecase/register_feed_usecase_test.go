package register_feed_usecase

import (
	"bytes"
	"context"
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

func TestRegisterFeedUsecase_Execute(t *testing.T) {
	initTestLogger()

	t.Run("validates the URL then stores the subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mocks.NewMockFetchFeedPort(ctrl)
		subscriptions := mocks.NewMockFeedSubscriptionPort(ctrl)

		title := "Example Feed"
		created := &domain.Feed{ID: uuid.New(), OwnerID: "owner-1", URL: "https://example.com/feed.xml", Title: &title}

		gomock.InOrder(
			fetcher.EXPECT().ValidateFeedURL(gomock.Any(), "https://example.com/feed.xml").Return(title, nil),
			subscriptions.EXPECT().CreateFeed(gomock.Any(), "owner-1", "https://example.com/feed.xml", &title).Return(created, nil),
		)

		usecase := NewRegisterFeedUsecase(fetcher, subscriptions)
		feed, err := usecase.Execute(context.Background(), "owner-1", "https://example.com/feed.xml", nil)

		require.NoError(t, err)
		require.Equal(t, created.ID, feed.ID)
		require.Equal(t, "Example Feed", feed.DisplayTitle())
	})

	t.Run("caller-provided title wins over the declared one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mocks.NewMockFetchFeedPort(ctrl)
		subscriptions := mocks.NewMockFeedSubscriptionPort(ctrl)

		override := "My Custom Name"
		created := &domain.Feed{ID: uuid.New(), OwnerID: "owner-1", URL: "https://example.com/feed.xml", Title: &override}

		fetcher.EXPECT().ValidateFeedURL(gomock.Any(), "https://example.com/feed.xml").Return("Declared Title", nil)
		subscriptions.EXPECT().CreateFeed(gomock.Any(), "owner-1", "https://example.com/feed.xml", &override).Return(created, nil)

		usecase := NewRegisterFeedUsecase(fetcher, subscriptions)
		feed, err := usecase.Execute(context.Background(), "owner-1", "https://example.com/feed.xml", &override)

		require.NoError(t, err)
		require.Equal(t, "My Custom Name", feed.DisplayTitle())
	})

	t.Run("rejects blank URLs without calling any port", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mocks.NewMockFetchFeedPort(ctrl)
		subscriptions := mocks.NewMockFeedSubscriptionPort(ctrl)

		usecase := NewRegisterFeedUsecase(fetcher, subscriptions)

		for _, url := range []string{"", "   "} {
			_, err := usecase.Execute(context.Background(), "owner-1", url, nil)
			require.ErrorIs(t, err, domain.ErrMissingFeedURL)
		}
	})

	t.Run("unvalidatable URL never reaches storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mocks.NewMockFetchFeedPort(ctrl)
		subscriptions := mocks.NewMockFeedSubscriptionPort(ctrl)

		fetcher.EXPECT().ValidateFeedURL(gomock.Any(), "https://example.com/not-a-feed").
			Return("", appErrors.ParseError("failed to parse feed", nil, nil))

		usecase := NewRegisterFeedUsecase(fetcher, subscriptions)
		_, err := usecase.Execute(context.Background(), "owner-1", "https://example.com/not-a-feed", nil)

		require.Error(t, err)
		appErr, ok := appErrors.AsAppError(err)
		require.True(t, ok)
		require.Equal(t, appErrors.ErrCodeParse, appErr.Code)
	})
}
