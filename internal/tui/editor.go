package tui

import (
	"fmt"
	"strings"
)

// renderEditor renders the property list: category headings with one line
// per recognized property, showing the effective value. Edited properties
// are marked; the cursor row is highlighted and, while editing, replaced by
// the value input.
func renderEditor(m *Model, width, height int) string {
	titleStyle := panelTitleDimStyle
	if m.activePane == PaneEditor {
		titleStyle = panelTitleStyle
	}
	title := titleStyle.Render("Style")
	if target := m.session.Selected(); target != nil {
		title += matchDimStyle.Render("  " + target.Label())
	}

	var lines []string
	lines = append(lines, title)
	lines = append(lines, "")

	contentHeight := height - 2

	// Scroll so the cursor row stays visible.
	start := 0
	if m.cursor >= contentHeight {
		start = m.cursor - contentHeight + 1
	}
	end := start + contentHeight
	if end > len(m.rows) {
		end = len(m.rows)
	}

	valueWidth := width - 26
	if valueWidth < 8 {
		valueWidth = 8
	}

	for i := start; i < end; i++ {
		row := m.rows[i]

		if row.heading != "" {
			lines = append(lines, categoryStyle.Render(string(row.heading)))
			continue
		}

		name := fmt.Sprintf("%-22s", row.prop)

		if m.editing && i == m.cursor {
			lines = append(lines, propSelectedStyle.Render(name)+
				editCursorStyle.Render(" ")+m.valueInput.View())
			continue
		}

		marker := "  "
		valueStyle := propValueStyle
		if m.session.Edited(row.prop) {
			marker = propEditedStyle.Render("~ ")
			valueStyle = propEditedStyle
		}

		value := truncate(m.session.GetValue(row.prop), valueWidth)
		line := marker + propNameStyle.Render(name) + valueStyle.Render(value)
		if i == m.cursor && m.activePane == PaneEditor {
			line = propSelectedStyle.Width(width).Render(
				marker + name + value)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderEditorPanel wraps the editor in a styled panel.
func renderEditorPanel(m *Model, width, height int) string {
	content := renderEditor(m, width-4, height-2)

	style := panelStyle
	if m.activePane == PaneEditor {
		style = panelActiveStyle
	}
	return style.Width(width).Height(height).Render(content)
}
