package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("45")  // Cyan
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorReading   = lipgloss.Color("78")  // Green
)

// ActiveTab style for the currently selected tab label.
var ActiveTab = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("232")).
	Background(colorPrimary).
	Padding(0, 1)

// InactiveTab style for the remaining tab labels.
var InactiveTab = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// SelectedItem style for the currently highlighted list entry.
var SelectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("238")).
	Padding(0, 1)

// NormalItem style for unselected entries.
var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// ItemSource style for the "via <source>" line under each title.
var ItemSource = lipgloss.NewStyle().
	Italic(true).
	Foreground(colorSecondary).
	Padding(0, 4)

// LoadingStyle for the fetching indicator.
var LoadingStyle = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Padding(1, 2)

// StatusBar style for the bottom bar in list mode.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("232")).
	Background(colorPrimary).
	Padding(0, 1)

// ReadingBar style for the bottom bar in reading mode.
var ReadingBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("232")).
	Background(colorReading).
	Padding(0, 1)

// HelpStyle for placeholder text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)
