package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/termnews/internal/session"
)

const listHelpText = " [1-9] Switch  [enter] Read  [r] Refresh  [s] Save  [o] Open  [c] Config  [q] Quit "

const readingHelpText = " j/k Scroll  [esc] Back  [q] Back "

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	header := a.renderTabs()
	footer := a.renderFooter()

	// Header and footer take one line each.
	bodyHeight := a.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if a.sess.Mode == session.ModeReading {
		body = a.renderReading(bodyHeight)
	} else {
		body = a.renderList(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderTabs renders the numbered tab bar.
func (a App) renderTabs() string {
	labels := make([]string, 0, len(a.cfg.Groups))
	for i, group := range a.cfg.Groups {
		label := fmt.Sprintf("%d.%s", i+1, group.Name)
		if i == a.sess.Tab {
			labels = append(labels, ActiveTab.Render(label))
		} else {
			labels = append(labels, InactiveTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

// renderList renders the item list, keeping the selection visible. Each
// item takes two lines: title and source.
func (a App) renderList(height int) string {
	if a.sess.Loading {
		return LoadingStyle.Render(a.spin.View() + " Fetching feeds...")
	}
	if len(a.sess.Items) == 0 {
		return HelpStyle.Render("No items. Press 'r' to refresh or 'c' to edit your feeds.")
	}

	perItem := 2
	visible := height / perItem
	if visible < 1 {
		visible = 1
	}

	offset := 0
	if a.sess.Cursor >= visible {
		offset = a.sess.Cursor - visible + 1
	}

	var b strings.Builder
	for i := offset; i < len(a.sess.Items) && i < offset+visible; i++ {
		item := a.sess.Items[i]
		title := item.Title
		if i == a.sess.Cursor {
			b.WriteString(SelectedItem.Render(title))
		} else {
			b.WriteString(NormalItem.Render(title))
		}
		b.WriteString("\n")
		b.WriteString(ItemSource.Render("via " + item.Source))
		b.WriteString("\n")
	}

	return b.String()
}

// renderReading renders the article pane sliced by the scroll offset.
func (a App) renderReading(height int) string {
	lines := strings.Split(a.sess.Article, "\n")

	from := a.sess.Scroll
	if from > len(lines) {
		from = len(lines)
	}
	to := from + height
	if to > len(lines) {
		to = len(lines)
	}

	body := strings.Join(lines[from:to], "\n")
	if a.sess.Loading {
		body = a.spin.View() + " " + body
	}
	return body
}

// renderFooter renders the bottom bar: a status message when one is set,
// key hints otherwise.
func (a App) renderFooter() string {
	if a.sess.Mode == session.ModeReading {
		return ReadingBar.Width(a.width).Render(readingHelpText)
	}
	text := listHelpText
	if a.sess.Status != "" {
		text = " " + a.sess.Status + " "
	}
	return StatusBar.Width(a.width).Render(text)
}
