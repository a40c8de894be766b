package explore

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary   = lipgloss.Color("#11C3DB") // cyan
	colorMuted     = lipgloss.Color("8")       // gray
	colorHighlight = lipgloss.Color("15")      // white
	colorError     = lipgloss.Color("9")       // red
)

// Title bar style
var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Background(colorPrimary).
	Padding(0, 1)

// Line number gutter
var gutterStyle = lipgloss.NewStyle().
	Foreground(colorMuted)

var gutterCursorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorPrimary)

// The byte under the cursor
var cursorStyle = lipgloss.NewStyle().
	Reverse(true)

// Status bar styles
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Background(lipgloss.Color("17"))

	statusErrorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorError)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Prompt style for goto input
var promptStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorPrimary)
