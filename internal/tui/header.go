package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	FLARE │ http://localhost:3000 │ div.card │ 3 changes
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("FLARE")
	sep := headerSepStyle.Render(" │ ")

	var parts []string
	parts = append(parts, brand)
	parts = append(parts, sep)
	parts = append(parts, headerMetaStyle.Render(truncate(m.resolver.PageURL(), 40)))

	if target := m.session.Selected(); target != nil {
		parts = append(parts, sep)
		parts = append(parts, headerMetaStyle.Render(target.Label()))
	}

	left := strings.Join(parts, "")

	badge := ""
	if n := m.session.TotalChangeCount(); n > 0 {
		badge = headerBadgeStyle.Render(fmt.Sprintf("%d", n))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(badge) - 2
	if gap < 0 {
		gap = 0
	}
	return headerBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + badge)
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left string
	if m.statusMsg != "" {
		if m.statusErr {
			left = statusErrStyle.Render(m.statusMsg)
		} else {
			left = statusStyle.Render(m.statusMsg)
		}
	}

	var right string
	switch {
	case m.screen == ScreenPicker && m.inputFocused:
		right = renderHints([]hint{
			{"enter", "match"},
			{"esc", "back"},
		})
	case m.screen == ScreenPicker:
		right = renderHints([]hint{
			{"↑↓", "navigate"},
			{"enter", "inspect"},
			{"/", "selector"},
			{"q", "quit"},
		})
	case m.editing:
		right = renderHints([]hint{
			{"enter", "apply"},
			{"esc", "cancel"},
		})
	default:
		right = renderHints([]hint{
			{"↑↓", "navigate"},
			{"enter", "edit"},
			{"tab", "pane"},
			{"c", "copy"},
			{"r", "reset"},
			{"p", "panel"},
			{"esc", "pick"},
			{"q", "quit"},
		})
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
