// Package session holds the single mutable state shared between the render
// loop and background work.
//
// The State is owned by the Bubble Tea model; key handlers and completion
// messages are the only writers, and both run inside the program's update
// loop, so every mutation here is already serialized. Background results
// carry the tab index and request sequence number they were issued for, and
// Commit applies them only while that request is still the current one.
package session

import "github.com/abelbrown/termnews/internal/feeds"

// ViewMode selects which input handlers and render path are active.
type ViewMode int

const (
	ModeList ViewMode = iota
	ModeReading
)

// LoadingArticleText seeds the reading pane while the pipeline runs.
const LoadingArticleText = "Loading article..."

// State is the session state. The zero value is not useful; use New.
type State struct {
	Items   []feeds.Item
	Cursor  int // -1 when nothing is selected
	Loading bool
	Tab     int
	Mode    ViewMode
	Article string
	Scroll  int
	Status  string // empty when no status message is shown

	// seq is the sequence number of the most recently issued refresh
	// request. A completion carrying an older number is stale even when
	// its tab index still matches.
	seq uint64
}

// New creates the startup state: tab 0, loading, nothing selected.
func New() State {
	return State{
		Cursor:  -1,
		Loading: true,
	}
}

// Next moves the selection down, wrapping to the top, and clears any status
// message. No-op when the list is empty.
func (s *State) Next() {
	if len(s.Items) == 0 {
		return
	}
	if s.Cursor < 0 || s.Cursor >= len(s.Items)-1 {
		s.Cursor = 0
	} else {
		s.Cursor++
	}
	s.Status = ""
}

// Previous moves the selection up, wrapping to the bottom, and clears any
// status message. No-op when the list is empty.
func (s *State) Previous() {
	if len(s.Items) == 0 {
		return
	}
	switch {
	case s.Cursor < 0:
		s.Cursor = 0
	case s.Cursor == 0:
		s.Cursor = len(s.Items) - 1
	default:
		s.Cursor--
	}
	s.Status = ""
}

// Selected returns the currently selected item, if any.
func (s *State) Selected() (feeds.Item, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return feeds.Item{}, false
	}
	return s.Items[s.Cursor], true
}

// Refresh registers a new refresh request for the current tab and returns
// its sequence number. Any earlier in-flight request becomes stale.
func (s *State) Refresh() uint64 {
	s.seq++
	return s.seq
}

// ForceRefresh is the manual refresh operation: it always issues a new
// request for the current tab, regardless of what is in flight.
func (s *State) ForceRefresh() uint64 {
	s.Status = "Refreshing..."
	return s.Refresh()
}

// SwitchTab moves to tab, clearing the list and entering the loading state,
// and issues a refresh request for it. Switching to the already-active tab
// is a no-op and does not re-trigger a fetch.
func (s *State) SwitchTab(tab int) (seq uint64, switched bool) {
	if tab == s.Tab {
		return 0, false
	}
	s.Tab = tab
	s.Items = nil
	s.Cursor = -1
	s.Loading = true
	s.Status = ""
	return s.Refresh(), true
}

// CommitRefresh applies a completed aggregation result. The staleness
// guard: the result is committed only if the request's tab is still the
// current tab and no newer request has been issued since; otherwise it is
// silently discarded. Reports whether the commit happened.
func (s *State) CommitRefresh(tab int, seq uint64, items []feeds.Item) bool {
	if tab != s.Tab || seq != s.seq {
		return false
	}
	s.Items = items
	s.Loading = false
	if len(items) > 0 {
		s.Cursor = 0
	} else {
		s.Cursor = -1
	}
	return true
}

// BeginArticle enters reading mode and resets the reading pane for a fresh
// load.
func (s *State) BeginArticle() {
	s.Mode = ModeReading
	s.Loading = true
	s.Article = LoadingArticleText
	s.Scroll = 0
	s.Status = ""
}

// CommitArticle applies a completed article load. Unlike feed refreshes
// there is no staleness guard: only one article load can be in flight, and
// its result is committed unconditionally.
func (s *State) CommitArticle(text string) {
	s.Article = text
	s.Loading = false
}

// ReturnToList leaves reading mode.
func (s *State) ReturnToList() {
	s.Mode = ModeList
}

// ScrollDown scrolls the article body down one line.
func (s *State) ScrollDown() {
	s.Scroll++
}

// ScrollUp scrolls the article body up one line, saturating at zero.
func (s *State) ScrollUp() {
	if s.Scroll > 0 {
		s.Scroll--
	}
}
