// Package feeds defines the feed group and item model for termnews.
package feeds

// Group is a named set of feed URLs whose items are merged into one tab.
// Groups are immutable once loaded and identified by their position in the
// configured sequence.
type Group struct {
	Name string
	URLs []string
}

// Item is one normalized entry from a syndication feed.
// Items are produced fresh on every fetch and never mutated afterwards;
// a refresh replaces the whole list, it never patches individual items.
type Item struct {
	Title  string
	Source string // the feed's declared title
	Tag    string // fixed "RSS" marker
	URL    string // empty when the entry carries no link
}

// DefaultGroups is the built-in starting pack used when no config file
// exists. Organized by tab - you see exactly what you're subscribed to.
var DefaultGroups = []Group{
	{
		Name: "Tech Hub",
		URLs: []string{
			"https://techcrunch.com/feed/",
			"https://www.theverge.com/rss/index.xml",
			"https://www.wired.com/feed/rss",
		},
	},
	{
		Name: "World",
		URLs: []string{
			"https://feeds.bbci.co.uk/news/world/rss.xml",
			"https://www.aljazeera.com/xml/rss/all.xml",
		},
	},
	{
		Name: "Sports",
		URLs: []string{
			"https://www.espn.com/espn/rss/news",
		},
	},
	{
		Name: "Go",
		URLs: []string{
			"https://go.dev/blog/feed.atom",
		},
	},
}
