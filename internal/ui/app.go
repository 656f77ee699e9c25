package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/termnews/internal/feeds"
	"github.com/abelbrown/termnews/internal/session"
)

// readingWidth matches the pipeline's wrap width so glamour re-renders the
// article at the same column.
const readingWidth = 100

// articleLoadFailedText replaces the article body on transport failure.
const articleLoadFailedText = "Failed to load article."

// AppConfig wires the App to its collaborators. All background work is
// expressed as tea.Cmd factories so the App never blocks the update loop.
type AppConfig struct {
	Groups      []feeds.Group
	Refresh     func(tab int, seq uint64) tea.Cmd
	LoadArticle func(url string) tea.Cmd
	SaveItem    func(item feeds.Item) string
	OpenURL     func(url string) error
	OpenConfig  func() string
}

// App is the root Bubble Tea model. It owns the session state; every
// mutation - key handlers and background completions alike - happens inside
// Update, which serializes them.
type App struct {
	cfg  AppConfig
	sess session.State

	// initialSeq identifies the startup refresh. It is issued here rather
	// than in Init because Init's receiver copy is discarded by the
	// runtime; the state the program keeps must already know about the
	// request.
	initialSeq uint64

	spin     spinner.Model
	renderer *glamour.TermRenderer

	width  int
	height int
	ready  bool
}

// NewApp creates an App over the configured feed groups.
func NewApp(cfg AppConfig) App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	// Renderer failure just means raw article text; not worth surfacing.
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(readingWidth),
	)

	sess := session.New()
	initialSeq := sess.Refresh()

	return App{
		cfg:        cfg,
		sess:       sess,
		initialSeq: initialSeq,
		spin:       s,
		renderer:   renderer,
	}
}

// Init kicks off the spinner and the initial refresh of tab 0.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spin.Tick}
	if a.cfg.Refresh != nil {
		cmds = append(cmds, a.cfg.Refresh(a.sess.Tab, a.initialSeq))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case GroupFetched:
		a.sess.CommitRefresh(msg.Tab, msg.Seq, msg.Items)
		return a, nil

	case ArticleLoaded:
		a.sess.CommitArticle(a.renderArticle(msg))
		return a, nil

	case RefreshTick:
		// Silent background refresh of the current tab; skipped while a
		// refresh is already pending or the user is reading.
		if a.sess.Mode != session.ModeList || a.sess.Loading || a.cfg.Refresh == nil {
			return a, nil
		}
		return a, a.cfg.Refresh(a.sess.Tab, a.sess.Refresh())
	}

	return a, nil
}

// renderArticle turns a pipeline completion into the text committed to the
// reading pane.
func (a App) renderArticle(msg ArticleLoaded) string {
	if msg.Err != nil {
		return articleLoadFailedText
	}
	if a.renderer != nil {
		if out, err := a.renderer.Render(msg.Text); err == nil {
			return out
		}
	}
	return msg.Text
}

// handleKeyMsg processes keyboard input for the active view mode.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.sess.Mode == session.ModeReading {
		return a.handleReadingKey(msg)
	}
	return a.handleListKey(msg)
}

func (a App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q":
		return a, tea.Quit

	case "j", "down":
		a.sess.Next()
		return a, nil

	case "k", "up":
		a.sess.Previous()
		return a, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		tab := int(key[0] - '1')
		if tab >= len(a.cfg.Groups) {
			return a, nil
		}
		seq, switched := a.sess.SwitchTab(tab)
		if !switched || a.cfg.Refresh == nil {
			return a, nil
		}
		return a, a.cfg.Refresh(tab, seq)

	case "r":
		if a.cfg.Refresh == nil {
			return a, nil
		}
		return a, a.cfg.Refresh(a.sess.Tab, a.sess.ForceRefresh())

	case "s":
		if item, ok := a.sess.Selected(); ok && a.cfg.SaveItem != nil {
			a.sess.Status = a.cfg.SaveItem(item)
		}
		return a, nil

	case "c":
		if a.cfg.OpenConfig != nil {
			a.sess.Status = a.cfg.OpenConfig()
		}
		return a, nil

	case "o":
		if item, ok := a.sess.Selected(); ok && item.URL != "" && a.cfg.OpenURL != nil {
			_ = a.cfg.OpenURL(item.URL)
		}
		return a, nil

	case "enter":
		item, ok := a.sess.Selected()
		if !ok || item.URL == "" || a.cfg.LoadArticle == nil {
			return a, nil
		}
		a.sess.BeginArticle()
		return a, a.cfg.LoadArticle(item.URL)
	}

	return a, nil
}

func (a App) handleReadingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "backspace":
		a.sess.ReturnToList()
		return a, nil

	case "j", "down":
		a.sess.ScrollDown()
		return a, nil

	case "k", "up":
		a.sess.ScrollUp()
		return a, nil
	}

	return a, nil
}

// Session returns the current session state (for testing).
func (a App) Session() session.State {
	return a.sess
}
