package session

import (
	"testing"

	"github.com/abelbrown/termnews/internal/feeds"
)

func threeItems() []feeds.Item {
	return []feeds.Item{
		{Title: "a", URL: "http://example.com/a"},
		{Title: "b", URL: "http://example.com/b"},
		{Title: "c", URL: "http://example.com/c"},
	}
}

func TestNewStartsLoadingOnFirstTab(t *testing.T) {
	s := New()
	if !s.Loading {
		t.Error("expected Loading=true at startup")
	}
	if s.Tab != 0 {
		t.Errorf("expected Tab=0, got %d", s.Tab)
	}
	if s.Cursor != -1 {
		t.Errorf("expected no selection, got cursor %d", s.Cursor)
	}
}

func TestSelectionWrapsForward(t *testing.T) {
	s := New()
	s.CommitRefresh(0, s.Refresh(), threeItems())

	if s.Cursor != 0 {
		t.Fatalf("expected cursor 0 after commit, got %d", s.Cursor)
	}

	s.Next()
	s.Next()
	if s.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", s.Cursor)
	}

	s.Next()
	if s.Cursor != 0 {
		t.Errorf("expected wrap to 0, got %d", s.Cursor)
	}
}

func TestSelectionWrapsBackward(t *testing.T) {
	s := New()
	s.CommitRefresh(0, s.Refresh(), threeItems())

	s.Previous()
	if s.Cursor != 2 {
		t.Errorf("expected wrap to 2, got %d", s.Cursor)
	}
}

func TestSelectionNoopWhenEmpty(t *testing.T) {
	s := New()
	s.Next()
	s.Previous()
	if s.Cursor != -1 {
		t.Errorf("expected cursor to stay -1, got %d", s.Cursor)
	}
}

func TestMovementClearsStatus(t *testing.T) {
	s := New()
	s.CommitRefresh(0, s.Refresh(), threeItems())
	s.Status = "Saved: \"a\""

	s.Next()
	if s.Status != "" {
		t.Errorf("expected status cleared, got %q", s.Status)
	}
}

func TestSwitchTabClearsAndLoads(t *testing.T) {
	s := New()
	s.CommitRefresh(0, s.Refresh(), threeItems())
	s.Status = "Refreshing..."

	seq, switched := s.SwitchTab(1)
	if !switched {
		t.Fatal("expected switch to a different tab to proceed")
	}
	if seq == 0 {
		t.Error("expected a fresh request sequence")
	}
	if s.Tab != 1 || len(s.Items) != 0 || !s.Loading || s.Status != "" || s.Cursor != -1 {
		t.Errorf("unexpected state after switch: %+v", s)
	}
}

func TestSwitchToActiveTabIsNoop(t *testing.T) {
	s := New()
	s.CommitRefresh(0, s.Refresh(), threeItems())

	_, switched := s.SwitchTab(0)
	if switched {
		t.Fatal("expected switch to the active tab to be a no-op")
	}
	if len(s.Items) != 3 || s.Loading {
		t.Errorf("no-op switch must not clear items or set loading: %+v", s)
	}
}

func TestStalenessGuardDiscardsAfterTabSwitch(t *testing.T) {
	s := New()
	seqA, _ := s.SwitchTab(1)
	seqB, _ := s.SwitchTab(2)

	if s.CommitRefresh(1, seqA, threeItems()) {
		t.Fatal("refresh for a departed tab must not commit")
	}
	if len(s.Items) != 0 || !s.Loading {
		t.Errorf("stale commit must leave state untouched: %+v", s)
	}

	if !s.CommitRefresh(2, seqB, threeItems()) {
		t.Fatal("refresh for the current tab must commit")
	}
	if s.Loading || len(s.Items) != 3 || s.Cursor != 0 {
		t.Errorf("unexpected state after commit: %+v", s)
	}
}

func TestStalenessGuardDiscardsSupersededSameTabRefresh(t *testing.T) {
	s := New()
	first := s.ForceRefresh()
	second := s.ForceRefresh()

	if s.CommitRefresh(0, first, threeItems()) {
		t.Fatal("superseded refresh of the same tab must not commit")
	}
	if !s.CommitRefresh(0, second, threeItems()) {
		t.Fatal("latest refresh must commit")
	}
}

func TestStalenessGuardDiscardsAfterTabAwayAndBack(t *testing.T) {
	s := New()
	orig := s.ForceRefresh()
	s.SwitchTab(1)
	back, _ := s.SwitchTab(0)

	// Same tab index as the original request, but an older sequence.
	if s.CommitRefresh(0, orig, threeItems()) {
		t.Fatal("refresh from before the tab-away must not commit")
	}
	if !s.CommitRefresh(0, back, threeItems()) {
		t.Fatal("refresh issued on the way back must commit")
	}
}

func TestCommitEmptyResultClearsLoading(t *testing.T) {
	s := New()
	seq := s.Refresh()

	if !s.CommitRefresh(0, seq, nil) {
		t.Fatal("empty result for the current tab must still commit")
	}
	if s.Loading {
		t.Error("expected loading cleared")
	}
	if s.Cursor != -1 {
		t.Errorf("expected no selection for empty list, got %d", s.Cursor)
	}
}

func TestForceRefreshSetsStatus(t *testing.T) {
	s := New()
	s.ForceRefresh()
	if s.Status != "Refreshing..." {
		t.Errorf("expected refreshing status, got %q", s.Status)
	}
}

func TestArticleLifecycle(t *testing.T) {
	s := New()
	s.CommitRefresh(0, s.Refresh(), threeItems())
	s.Scroll = 7
	s.Status = "Saved"

	s.BeginArticle()
	if s.Mode != ModeReading || !s.Loading || s.Scroll != 0 || s.Status != "" {
		t.Errorf("unexpected state after BeginArticle: %+v", s)
	}
	if s.Article != LoadingArticleText {
		t.Errorf("expected loading placeholder, got %q", s.Article)
	}

	// Commits are unconditional: even a tab switch in between does not
	// guard article loads.
	s.SwitchTab(1)
	s.CommitArticle("body")
	if s.Article != "body" || s.Loading {
		t.Errorf("unexpected state after CommitArticle: %+v", s)
	}

	s.ReturnToList()
	if s.Mode != ModeList {
		t.Errorf("expected list mode, got %v", s.Mode)
	}
}

func TestScrollSaturatesAtZero(t *testing.T) {
	s := New()
	s.ScrollUp()
	if s.Scroll != 0 {
		t.Errorf("expected scroll to saturate at 0, got %d", s.Scroll)
	}
	s.ScrollDown()
	s.ScrollDown()
	s.ScrollUp()
	if s.Scroll != 1 {
		t.Errorf("expected scroll 1, got %d", s.Scroll)
	}
}

func TestSelectedOutOfRange(t *testing.T) {
	s := New()
	if _, ok := s.Selected(); ok {
		t.Error("expected no selection on empty state")
	}
	s.CommitRefresh(0, s.Refresh(), threeItems())
	item, ok := s.Selected()
	if !ok || item.Title != "a" {
		t.Errorf("expected first item selected, got %+v ok=%v", item, ok)
	}
}
