package client

import "feedhub/domain"

// Timeline accumulates server pages into a stable display list.
//
// Because the server rebuilds the timeline on every call, a page fetched
// after new articles arrive can contain entries the client already shows, at
// different positions. Merging by link keeps each known article at the
// position the user last saw it and appends genuinely new articles in server
// order, so an open scroll position never jumps.
type Timeline struct {
	items     []*domain.ArticleItem
	index     map[string]int
	states    map[string]domain.ArticleState
	exhausted bool
}

func NewTimeline() *Timeline {
	return &Timeline{
		index:  make(map[string]int),
		states: make(map[string]domain.ArticleState),
	}
}

// MergePage folds one server page into the list. Known links are refreshed
// in place; unknown links are appended in the order the server returned
// them. A short page latches the exhausted flag until Reset.
func (t *Timeline) MergePage(page []*domain.ArticleItem, requestedPageSize int) {
	for _, item := range page {
		if pos, known := t.index[item.Link]; known {
			t.items[pos] = item
			continue
		}
		t.index[item.Link] = len(t.items)
		t.items = append(t.items, item)
	}

	if len(page) < requestedPageSize {
		t.exhausted = true
	}
}

// ApplyStates overlays read/saved flags onto the timeline. Links absent from
// the input keep whatever state they had; unknown links default to unread
// and unsaved when queried.
func (t *Timeline) ApplyStates(states map[string]domain.ArticleState) {
	for link, state := range states {
		t.states[link] = state
	}
}

// SetState records one local transition, typically echoing a successful
// server upsert.
func (t *Timeline) SetState(link string, state domain.ArticleState) {
	t.states[link] = state
}

// StateOf returns the flags for a link. Absence means unread and unsaved.
func (t *Timeline) StateOf(link string) domain.ArticleState {
	return t.states[link]
}

// Remove drops a link from the display list, mirroring a server-side
// tombstone. Later merges will not resurrect it because the server filters
// tombstoned links out of every page.
func (t *Timeline) Remove(link string) {
	pos, known := t.index[link]
	if !known {
		return
	}

	t.items = append(t.items[:pos], t.items[pos+1:]...)
	delete(t.index, link)
	delete(t.states, link)

	for i := pos; i < len(t.items); i++ {
		t.index[t.items[i].Link] = i
	}
}

// Items returns the display list in order. The slice is shared; callers must
// not mutate it.
func (t *Timeline) Items() []*domain.ArticleItem {
	return t.items
}

// Len reports how many articles the timeline currently shows.
func (t *Timeline) Len() int {
	return len(t.items)
}

// Exhausted reports whether a previous merge saw a short page. Further
// fetches would return nothing new until the list is reset.
func (t *Timeline) Exhausted() bool {
	return t.exhausted
}

// Reset clears the list, the state overlay and the exhaustion latch, for a
// full refresh.
func (t *Timeline) Reset() {
	t.items = nil
	t.index = make(map[string]int)
	t.states = make(map[string]domain.ArticleState)
	t.exhausted = false
}
