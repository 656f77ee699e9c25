// Package bookmark appends saved items to a markdown file.
package bookmark

import (
	"fmt"
	"os"

	"github.com/abelbrown/termnews/internal/feeds"
	"github.com/abelbrown/termnews/internal/logging"
)

// DefaultPath is the bookmark file in the working directory.
const DefaultPath = "saved_news.md"

// Store appends bookmarks to a single file. The file is append-only: saving
// the same item twice produces two identical lines, never a merge.
type Store struct {
	path string
}

// NewStore creates a Store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save appends the item as a markdown link line, creating the file if
// absent, and returns a short status message for the UI. File I/O failures
// are never fatal.
func (s *Store) Save(item feeds.Item) string {
	if item.URL == "" {
		return "No URL to save."
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logging.Error("failed to open bookmark file", "path", s.path, "err", err)
		return "Failed to save file."
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "- [%s](%s)\n", item.Title, item.URL); err != nil {
		logging.Error("failed to append bookmark", "path", s.path, "err", err)
		return "Failed to save file."
	}

	return fmt.Sprintf("Saved: %q", item.Title)
}
