// Package tui implements the Flare inspection panel.
//
// Built with Charmbracelet's BubbleTea, Bubbles, and Lipgloss libraries.
//
// Component architecture:
//
//	model.go   — root model, message routing, Init/Update
//	theme.go   — centralized color + style definitions
//	header.go  — top bar with page context + change badge, footer hints
//	picker.go  — selector input + matched-element list (initial screen)
//	editor.go  — property editor grouped by category
//	changes.go — accumulated style-change diff pane
//	helpers.go — truncation, clamping, small string utilities
package tui
