package tui

import (
	"fmt"
	"strings"
)

// renderChanges renders the accumulated style-change pane: one block per
// element, one line per changed property, in the deterministic order the
// prompt will use.
func renderChanges(m *Model, width, height int) string {
	titleStyle := panelTitleDimStyle
	if m.activePane == PaneChanges {
		titleStyle = panelTitleStyle
	}
	title := titleStyle.Render("Changes")

	changes := m.session.AllChanges()
	if len(changes) == 0 {
		return title + "\n" +
			matchDimStyle.Render("No edits yet. Change a value on the left.")
	}

	title += matchDimStyle.Render(fmt.Sprintf("  %d", len(changes)))

	var lines []string
	lastElement := ""
	for _, c := range changes {
		if c.Element != lastElement {
			if lastElement != "" {
				lines = append(lines, "")
			}
			lines = append(lines, changeElementStyle.Render(c.Element))
			lastElement = c.Element
		}

		valueWidth := (width - len(c.Property) - 8) / 2
		if valueWidth < 6 {
			valueWidth = 6
		}
		lines = append(lines, fmt.Sprintf("  %s %s %s %s",
			propNameStyle.Render(string(c.Property)),
			changeOldStyle.Render(truncate(c.OldValue, valueWidth)),
			changeArrowStyle.Render("→"),
			changeNewStyle.Render(truncate(c.NewValue, valueWidth))))
	}

	// Apply scroll offset.
	contentHeight := height - 2
	scroll := clamp(m.changesScroll, 0, len(lines)-1)
	if scroll > 0 {
		lines = lines[scroll:]
	}
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}

	return title + "\n" + strings.Join(lines, "\n")
}

// renderChangesPanel wraps the changes pane in a styled panel.
func renderChangesPanel(m *Model, width, height int) string {
	content := renderChanges(m, width-4, height-2)

	style := panelStyle
	if m.activePane == PaneChanges {
		style = panelActiveStyle
	}
	return style.Width(width).Height(height).Render(content)
}
