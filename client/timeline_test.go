package client

import (
	"testing"
	"time"

	"feedhub/domain"

	"github.com/stretchr/testify/require"
)

func article(link string, day int) *domain.ArticleItem {
	published := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
	return &domain.ArticleItem{
		FeedID:    "feed-1",
		Title:     link,
		Link:      link,
		Published: &published,
	}
}

func links(items []*domain.ArticleItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Link)
	}
	return out
}

func TestTimeline_MergePage(t *testing.T) {
	t.Run("appends new articles in server order", func(t *testing.T) {
		timeline := NewTimeline()

		timeline.MergePage([]*domain.ArticleItem{
			article("https://a/3", 3),
			article("https://a/2", 2),
		}, 2)

		require.Equal(t, []string{"https://a/3", "https://a/2"}, links(timeline.Items()))
		require.False(t, timeline.Exhausted())
	})

	t.Run("known links keep their position when the server reorders", func(t *testing.T) {
		timeline := NewTimeline()
		timeline.MergePage([]*domain.ArticleItem{
			article("https://a/2", 2),
			article("https://a/1", 1),
		}, 2)

		// A newer article pushed the old ones down server-side.
		timeline.MergePage([]*domain.ArticleItem{
			article("https://a/4", 4),
			article("https://a/2", 2),
			article("https://a/1", 1),
		}, 3)

		require.Equal(t, []string{"https://a/2", "https://a/1", "https://a/4"}, links(timeline.Items()))
	})

	t.Run("refreshed item replaces its stored copy in place", func(t *testing.T) {
		timeline := NewTimeline()
		timeline.MergePage([]*domain.ArticleItem{article("https://a/1", 1)}, 1)

		updated := article("https://a/1", 1)
		updated.Title = "Updated Title"
		timeline.MergePage([]*domain.ArticleItem{updated}, 1)

		require.Equal(t, 1, timeline.Len())
		require.Equal(t, "Updated Title", timeline.Items()[0].Title)
	})

	t.Run("short page latches exhaustion until reset", func(t *testing.T) {
		timeline := NewTimeline()

		timeline.MergePage([]*domain.ArticleItem{article("https://a/1", 1)}, 30)
		require.True(t, timeline.Exhausted())

		// A later full page does not unlatch.
		full := make([]*domain.ArticleItem, 0, 2)
		full = append(full, article("https://a/2", 2), article("https://a/3", 3))
		timeline.MergePage(full, 2)
		require.True(t, timeline.Exhausted())

		timeline.Reset()
		require.False(t, timeline.Exhausted())
		require.Zero(t, timeline.Len())
	})
}

func TestTimeline_States(t *testing.T) {
	timeline := NewTimeline()
	timeline.MergePage([]*domain.ArticleItem{
		article("https://a/1", 1),
		article("https://a/2", 2),
	}, 2)

	timeline.ApplyStates(map[string]domain.ArticleState{
		"https://a/1": {Read: true},
	})

	require.True(t, timeline.StateOf("https://a/1").Read)
	require.False(t, timeline.StateOf("https://a/2").Read, "absent link defaults to unread")

	// A later overlay without the link keeps the earlier flags.
	timeline.ApplyStates(map[string]domain.ArticleState{
		"https://a/2": {Saved: true},
	})
	require.True(t, timeline.StateOf("https://a/1").Read)
	require.True(t, timeline.StateOf("https://a/2").Saved)

	timeline.SetState("https://a/2", domain.ArticleState{Read: true, Saved: true})
	require.True(t, timeline.StateOf("https://a/2").Read)
}

func TestTimeline_Remove(t *testing.T) {
	timeline := NewTimeline()
	timeline.MergePage([]*domain.ArticleItem{
		article("https://a/1", 1),
		article("https://a/2", 2),
		article("https://a/3", 3),
	}, 3)

	timeline.Remove("https://a/2")

	require.Equal(t, []string{"https://a/1", "https://a/3"}, links(timeline.Items()))

	// Positions stay consistent for later merges.
	timeline.MergePage([]*domain.ArticleItem{article("https://a/4", 4)}, 1)
	require.Equal(t, []string{"https://a/1", "https://a/3", "https://a/4"}, links(timeline.Items()))

	// Removing an unknown link is a no-op.
	timeline.Remove("https://a/nope")
	require.Equal(t, 3, timeline.Len())
}
