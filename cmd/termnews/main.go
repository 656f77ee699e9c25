package main

import (
	"context"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/abelbrown/termnews/internal/bookmark"
	"github.com/abelbrown/termnews/internal/config"
	"github.com/abelbrown/termnews/internal/coord"
	"github.com/abelbrown/termnews/internal/fetch"
	"github.com/abelbrown/termnews/internal/logging"
	"github.com/abelbrown/termnews/internal/reader"
	"github.com/abelbrown/termnews/internal/ui"
)

func main() {
	// File logging is best-effort; the TUI owns the terminal either way.
	if err := logging.Init(); err != nil {
		log.Printf("file logging disabled: %v", err)
	}
	defer logging.Close()

	cfg := config.Load()
	groups := cfg.Groups()

	fetcher := fetch.NewFetcher(fetch.FetchTimeout)
	aggregator := fetch.NewAggregator(fetcher)
	articles := reader.New()
	bookmarks := bookmark.NewStore(bookmark.DefaultPath)

	interval := time.Duration(cfg.TUI.RefreshInterval) * time.Second
	coordinator := coord.New(groups, aggregator, articles, interval)

	app := ui.NewApp(ui.AppConfig{
		Groups:      groups,
		Refresh:     coordinator.RefreshCmd,
		LoadArticle: coordinator.ArticleCmd,
		SaveItem:    bookmarks.Save,
		OpenURL:     browser.OpenURL,
		OpenConfig:  config.OpenInEditor,
	})

	ctx, cancel := context.WithCancel(context.Background())

	program := tea.NewProgram(app, tea.WithAltScreen())
	coordinator.Start(ctx, program)

	// Run blocks until quit. Bubble Tea restores the terminal on every
	// exit path, including errors.
	_, err := program.Run()

	cancel()
	coordinator.Wait()

	if err != nil {
		logging.Error("program exited with error", "err", err)
		log.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
