package fetch

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/termnews/internal/feeds"
	"github.com/abelbrown/termnews/internal/logging"
)

// sourceFetcher is the single-URL fetch contract, split out so tests can
// inject a fake.
type sourceFetcher interface {
	Fetch(ctx context.Context, url string) ([]feeds.Item, error)
}

// Aggregator fetches all URLs of a feed group in parallel and merges the
// successful results.
type Aggregator struct {
	fetcher sourceFetcher
}

// NewAggregator creates an Aggregator backed by the real fetcher.
func NewAggregator(f *Fetcher) *Aggregator {
	return NewAggregatorWithFetcher(f)
}

// NewAggregatorWithFetcher allows injecting a custom fetcher (for testing).
func NewAggregatorWithFetcher(f sourceFetcher) *Aggregator {
	return &Aggregator{fetcher: f}
}

// FetchGroup fans one goroutine out per URL, waits for all of them, and
// concatenates the successes in completion order. Failed sources contribute
// nothing and are only logged; a group with zero URLs or zero successes
// yields an empty result, which is not an error condition.
func (a *Aggregator) FetchGroup(ctx context.Context, group feeds.Group) []feeds.Item {
	if len(group.URLs) == 0 {
		return nil
	}

	var (
		mu     sync.Mutex
		merged []feeds.Item
	)

	var g errgroup.Group
	for _, url := range group.URLs {
		g.Go(func() error {
			srcCtx, cancel := context.WithTimeout(ctx, FetchTimeout)
			defer cancel()

			items, err := a.fetcher.Fetch(srcCtx, url)
			if err != nil {
				// Absorbed: the tab renders whatever the other
				// sources returned.
				logging.Debug("feed fetch failed", "group", group.Name, "url", url, "err", err)
				return nil
			}

			mu.Lock()
			merged = append(merged, items...)
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait() // goroutines never fail the group; errors absorbed per-source

	return merged
}
