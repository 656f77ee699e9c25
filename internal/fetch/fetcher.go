// Package fetch retrieves syndication feeds and merges them per tab.
//
// A Fetcher handles one feed URL at a time; the Aggregator fans a whole
// group out across goroutines and concatenates whatever succeeded.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"github.com/abelbrown/termnews/internal/feeds"
)

// FetchTimeout bounds each individual feed request.
const FetchTimeout = 5 * time.Second

// maxItemsPerSource caps how many entries one feed may contribute.
const maxItemsPerSource = 15

// sourceTag marks every item produced by the feed path.
const sourceTag = "RSS"

// Fetcher retrieves items from a single feed URL.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher creates a Fetcher whose requests are bounded by timeout.
// Outbound requests share a small rate limit so a refresh burst across
// many tabs stays polite.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(10), 5),
	}
}

// Fetch retrieves and parses one feed URL, returning at most 15 normalized
// items tagged with the feed's declared title. Any failure - network error,
// timeout, HTTP error status, malformed document - returns an error and no
// items; the caller treats that as "contributed nothing". No retry.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]feeds.Item, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "termnews/0.1 (+https://github.com/abelbrown/termnews)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]feeds.Item, 0, min(len(feed.Items), maxItemsPerSource))
	for i, entry := range feed.Items {
		if i >= maxItemsPerSource {
			break
		}
		title := entry.Title
		if title == "" {
			title = "No Title"
		}
		items = append(items, feeds.Item{
			Title:  title,
			Source: feed.Title,
			Tag:    sourceTag,
			URL:    entry.Link,
		})
	}

	return items, nil
}
