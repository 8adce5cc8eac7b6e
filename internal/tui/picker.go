package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPicker renders the element-selection screen: the selector input on
// top, matched elements below.
func renderPicker(m *Model, height int) string {
	var lines []string

	lines = append(lines, panelTitleStyle.Render("Pick an element"))
	lines = append(lines, "")
	lines = append(lines, m.selectorInput.View())
	lines = append(lines, "")

	if len(m.matches) == 0 {
		empty := emptyStateStyle.Render(
			"Type a CSS selector and press enter.\n\n" +
				"Matched elements appear here; pick one\n" +
				"to start editing its style.")
		body := strings.Join(lines, "\n")
		return body + "\n" + lipgloss.Place(
			m.width, height-5,
			lipgloss.Center, lipgloss.Center,
			empty,
		)
	}

	heading := panelTitleDimStyle.Render("Matches") +
		matchDimStyle.Render(fmt.Sprintf("  %d total", len(m.matches)))
	lines = append(lines, heading)

	maxVisible := height - 7
	if maxVisible < 3 {
		maxVisible = 3
	}

	start := 0
	if m.selectedMatch >= maxVisible {
		start = m.selectedMatch - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(m.matches) {
		end = len(m.matches)
	}

	for i := start; i < end; i++ {
		label := m.matches[i].Label()
		if i == m.selectedMatch && !m.inputFocused {
			lines = append(lines, matchSelectedStyle.Width(m.width-4).Render(label))
		} else {
			lines = append(lines, matchItemStyle.Width(m.width-4).Render(label))
		}
	}

	return strings.Join(lines, "\n")
}
