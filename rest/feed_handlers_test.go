package rest

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"feedhub/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandleListFeeds(t *testing.T) {
	container, ports := newTestContainer(t)

	title := "Example Feed"
	ports.subscriptions.EXPECT().ListFeeds(gomock.Any(), "owner-1").Return([]*domain.Feed{
		{ID: uuid.New(), OwnerID: "owner-1", URL: "https://example.com/feed.xml", Title: &title, CreatedAt: time.Now()},
		{ID: uuid.New(), OwnerID: "owner-1", URL: "https://untitled.example.com/rss", CreatedAt: time.Now()},
	}, nil)

	c, rec := newAuthedContext(t, http.MethodGet, "/v1/feeds", "")

	require.NoError(t, handleListFeeds(container)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var feeds []FeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feeds))
	require.Len(t, feeds, 2)
	require.Equal(t, "Example Feed", feeds[0].Title)
	require.Equal(t, "untitled.example.com", feeds[1].Title)
}

func TestHandleRegisterFeed(t *testing.T) {
	t.Run("creates a subscription for a valid feed", func(t *testing.T) {
		container, ports := newTestContainer(t)

		title := "Example Feed"
		created := &domain.Feed{ID: uuid.New(), OwnerID: "owner-1", URL: "https://example.com/feed.xml", Title: &title}

		ports.fetcher.EXPECT().ValidateFeedURL(gomock.Any(), "https://example.com/feed.xml").Return(title, nil)
		ports.subscriptions.EXPECT().CreateFeed(gomock.Any(), "owner-1", "https://example.com/feed.xml", &title).Return(created, nil)

		c, rec := newAuthedContext(t, http.MethodPost, "/v1/feeds", `{"url":"https://example.com/feed.xml"}`)

		require.NoError(t, handleRegisterFeed(container)(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		var feed FeedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
		require.Equal(t, created.ID.String(), feed.ID)
		require.Equal(t, "Example Feed", feed.Title)
	})

	t.Run("blank URL is rejected", func(t *testing.T) {
		container, _ := newTestContainer(t)

		c, rec := newAuthedContext(t, http.MethodPost, "/v1/feeds", `{"url":""}`)

		require.NoError(t, handleRegisterFeed(container)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleDeleteFeed(t *testing.T) {
	t.Run("deletes an owned feed", func(t *testing.T) {
		container, ports := newTestContainer(t)

		feedID := uuid.New()
		ports.subscriptions.EXPECT().DeleteFeed(gomock.Any(), "owner-1", feedID).Return(nil)

		c, rec := newAuthedContext(t, http.MethodDelete, "/v1/feeds/"+feedID.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(feedID.String())

		require.NoError(t, handleDeleteFeed(container)(c))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("malformed id is a client error", func(t *testing.T) {
		container, _ := newTestContainer(t)

		c, rec := newAuthedContext(t, http.MethodDelete, "/v1/feeds/not-a-uuid", "")
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		require.NoError(t, handleDeleteFeed(container)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown feed maps to 404", func(t *testing.T) {
		container, ports := newTestContainer(t)

		feedID := uuid.New()
		ports.subscriptions.EXPECT().DeleteFeed(gomock.Any(), "owner-1", feedID).Return(domain.ErrFeedNotFound)

		c, rec := newAuthedContext(t, http.MethodDelete, "/v1/feeds/"+feedID.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(feedID.String())

		require.NoError(t, handleDeleteFeed(container)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleRecommendedFeeds(t *testing.T) {
	c, rec := newAuthedContext(t, http.MethodGet, "/v1/feeds/recommended", "")

	require.NoError(t, handleRecommendedFeeds()(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var recommended []domain.RecommendedFeed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recommended))
	require.NotEmpty(t, recommended)
	for _, feed := range recommended {
		require.NotEmpty(t, feed.URL)
		require.NotEmpty(t, feed.Title)
	}
}
