package fetch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/abelbrown/termnews/internal/feeds"
)

// stubFetcher implements sourceFetcher with canned per-URL results.
type stubFetcher struct {
	items      map[string][]feeds.Item
	errs       map[string]error
	delays     map[string]time.Duration
	fetchCount atomic.Int32
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) ([]feeds.Item, error) {
	s.fetchCount.Add(1)
	if d := s.delays[url]; d > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(d):
		}
	}
	if err := s.errs[url]; err != nil {
		return nil, err
	}
	return s.items[url], nil
}

func TestFetchGroupMergesSuccessesOnly(t *testing.T) {
	stub := &stubFetcher{
		items: map[string][]feeds.Item{
			"ok1": {{Title: "a", Source: "S1"}, {Title: "b", Source: "S1"}},
			"ok2": {{Title: "c", Source: "S2"}},
		},
		errs: map[string]error{
			"fail": errors.New("connection refused"),
		},
	}
	agg := NewAggregatorWithFetcher(stub)

	group := feeds.Group{Name: "Mixed", URLs: []string{"ok1", "fail", "ok2"}}
	merged := agg.FetchGroup(context.Background(), group)

	if len(merged) != 3 {
		t.Fatalf("expected 3 items from the 2 healthy sources, got %d", len(merged))
	}
	// Completion order is unspecified; compare as a set.
	got := make(map[string]bool)
	for _, item := range merged {
		got[item.Title] = true
	}
	for _, want := range []string{"a", "b", "c"} {
		if !got[want] {
			t.Errorf("missing item %q in merged result", want)
		}
	}
	if stub.fetchCount.Load() != 3 {
		t.Errorf("expected all 3 sources attempted, got %d", stub.fetchCount.Load())
	}
}

func TestFetchGroupEmptyGroup(t *testing.T) {
	agg := NewAggregatorWithFetcher(&stubFetcher{})
	if merged := agg.FetchGroup(context.Background(), feeds.Group{Name: "Empty"}); len(merged) != 0 {
		t.Errorf("expected empty result for empty group, got %d items", len(merged))
	}
}

func TestFetchGroupAllSourcesFail(t *testing.T) {
	stub := &stubFetcher{
		errs: map[string]error{
			"u1": errors.New("timeout"),
			"u2": errors.New("bad xml"),
		},
	}
	agg := NewAggregatorWithFetcher(stub)

	merged := agg.FetchGroup(context.Background(), feeds.Group{Name: "Down", URLs: []string{"u1", "u2"}})
	if len(merged) != 0 {
		t.Errorf("expected empty result when every source fails, got %d items", len(merged))
	}
}

func TestFetchGroupSlowSourceDoesNotDropOthers(t *testing.T) {
	stub := &stubFetcher{
		items: map[string][]feeds.Item{
			"fast1": {{Title: "a"}},
			"fast2": {{Title: "b"}},
		},
		errs: map[string]error{
			"slow": errors.New("deadline exceeded"),
		},
		delays: map[string]time.Duration{
			"slow": 50 * time.Millisecond,
		},
	}
	agg := NewAggregatorWithFetcher(stub)

	group := feeds.Group{Name: "T", URLs: []string{"fast1", "slow", "fast2"}}
	merged := agg.FetchGroup(context.Background(), group)

	if len(merged) != 2 {
		t.Fatalf("expected exactly the 2 fast sources' items, got %d", len(merged))
	}
}
