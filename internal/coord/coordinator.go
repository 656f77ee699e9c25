// Package coord bridges background fetch work to the UI without blocking
// the render loop.
package coord

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/termnews/internal/feeds"
	"github.com/abelbrown/termnews/internal/logging"
	"github.com/abelbrown/termnews/internal/ui"
)

// Aggregator fetches a whole feed group, absorbing per-source failures.
type Aggregator interface {
	FetchGroup(ctx context.Context, group feeds.Group) []feeds.Item
}

// ArticleLoader produces displayable text for a document URL.
type ArticleLoader interface {
	Load(ctx context.Context, url string) (string, error)
}

// Sender delivers messages to the running program. *tea.Program satisfies
// it; tests inject a recorder.
type Sender interface {
	Send(msg tea.Msg)
}

// Coordinator turns refresh and article-load requests into detached
// background units of work. There is no cancellation of individual units: a
// stale fetch runs to completion and its result is discarded at commit
// time by the update loop.
type Coordinator struct {
	groups   []feeds.Group // IMMUTABLE: set at construction, never modified
	agg      Aggregator
	articles ArticleLoader
	interval time.Duration // auto-refresh period; <= 0 disables the ticker
	wg       sync.WaitGroup
}

// New creates a Coordinator. interval <= 0 disables auto-refresh.
func New(groups []feeds.Group, agg Aggregator, articles ArticleLoader, interval time.Duration) *Coordinator {
	groupsCopy := make([]feeds.Group, len(groups))
	copy(groupsCopy, groups)

	return &Coordinator{
		groups:   groupsCopy,
		agg:      agg,
		articles: articles,
		interval: interval,
	}
}

// RefreshCmd returns a fire-and-forget command that aggregates the group at
// tab and reports back with the request's identity attached. A tab index
// with no configured group answers with an empty result rather than an
// error.
func (c *Coordinator) RefreshCmd(tab int, seq uint64) tea.Cmd {
	return func() tea.Msg {
		if tab < 0 || tab >= len(c.groups) {
			return ui.GroupFetched{Tab: tab, Seq: seq}
		}
		items := c.agg.FetchGroup(context.Background(), c.groups[tab])
		return ui.GroupFetched{Tab: tab, Seq: seq, Items: items}
	}
}

// ArticleCmd returns a command that runs the extraction pipeline for url.
func (c *Coordinator) ArticleCmd(url string) tea.Cmd {
	return func() tea.Msg {
		text, err := c.articles.Load(context.Background(), url)
		if err != nil {
			logging.Debug("article load failed", "url", url, "err", err)
		}
		return ui.ArticleLoaded{Text: text, Err: err}
	}
}

// Start begins the auto-refresh ticker. Call with a cancellable context;
// cancellation is the only stop mechanism. No-op when auto-refresh is
// disabled.
func (c *Coordinator) Start(ctx context.Context, program Sender) {
	if c.interval <= 0 {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				program.Send(ui.RefreshTick{})
			}
		}
	}()
}

// Wait blocks until the background goroutine exits. Call after canceling
// the context passed to Start.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}
