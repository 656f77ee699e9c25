// Package ui provides the Bubble Tea TUI for termnews.
package ui

import "github.com/abelbrown/termnews/internal/feeds"

// GroupFetched is sent when a background aggregation finishes. Tab and Seq
// identify the request it answers; the update loop discards the message if
// that request has gone stale.
type GroupFetched struct {
	Tab   int
	Seq   uint64
	Items []feeds.Item
}

// ArticleLoaded is sent when the article pipeline finishes. Committed
// unconditionally - there is no staleness guard on article loads.
type ArticleLoaded struct {
	Text string
	Err  error
}

// RefreshTick triggers a periodic refresh of the current tab.
type RefreshTick struct{}
