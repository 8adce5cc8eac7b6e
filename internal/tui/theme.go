package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — GitHub Dark aesthetic
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.
// Designed for readability in dark terminals during long styling
// sessions next to a browser window.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")
	colorPurple = lipgloss.Color("#bc8cff")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorYellow)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	headerBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBg).
				Background(colorYellow).
				Padding(0, 1)
)

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.Border{Top: "─"}).
			BorderForeground(colorDivider)

	panelActiveStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.Border{Top: "─"}).
				BorderForeground(colorYellow)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	panelTitleDimStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted).
				Bold(true)
)

// Property editor
var (
	categoryStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	propNameStyle = lipgloss.NewStyle().
			Foreground(colorText)

	propValueStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	propEditedStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	propSelectedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true)

	editCursorStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)

// Changes pane
var (
	changeOldStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	changeNewStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	changeElementStyle = lipgloss.NewStyle().
				Foreground(colorPurple).
				Bold(true)

	changeArrowStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Background(colorBgSurface).
			Bold(true).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Element picker
var (
	matchItemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	matchSelectedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true).
				Padding(0, 1)

	matchDimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(2, 4)
)
