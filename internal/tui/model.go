package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/flarehq/flare/internal/css"
	"github.com/flarehq/flare/internal/database"
	"github.com/flarehq/flare/internal/inspector"
	"github.com/flarehq/flare/internal/prompt"
)

// Resolver finds elements on the live page. The browser package provides
// the CDP-backed implementation; tests use a fake.
type Resolver interface {
	PageURL() string
	Resolve(selector string) ([]inspector.StyleTarget, error)
}

// ────────────────────────────────────────────────────────────
// Screens and panes
// ────────────────────────────────────────────────────────────

// Screen is the top-level view: picking an element or editing one.
type Screen int

const (
	ScreenPicker Screen = iota
	ScreenEditor
)

// Pane represents which editor-screen pane has keyboard focus.
type Pane int

const (
	PaneEditor Pane = iota
	PaneChanges
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// editorRow is one line of the property editor: either a category heading
// or an editable property.
type editorRow struct {
	heading css.Category // non-empty means this row is a heading
	prop    css.Property
}

// Model is the root BubbleTea model for the Flare panel. State is organized
// by concern; rendering is delegated to component functions in separate
// files. All session mutation happens synchronously inside Update, one user
// event at a time.
type Model struct {
	session  *inspector.Session
	store    database.Store
	resolver Resolver

	// Navigation
	screen     Screen
	activePane Pane
	expanded   bool // changes pane visible; persisted across runs

	// Picker state
	selectorInput textinput.Model
	inputFocused  bool
	matches       []inspector.StyleTarget
	selectedMatch int

	// Editor state
	rows       []editorRow
	cursor     int
	editing    bool
	valueInput textinput.Model

	changesScroll int

	// Chrome
	width     int
	height    int
	statusMsg string
	statusErr bool
}

// NewModel creates the panel model. The persisted panel-expanded flag is
// read here; a failing store silently yields a collapsed panel.
func NewModel(session *inspector.Session, store database.Store, resolver Resolver) Model {
	selector := textinput.New()
	selector.Placeholder = "CSS selector, e.g. .card or button#submit"
	selector.Prompt = "❯ "
	selector.Focus()

	value := textinput.New()
	value.Prompt = ""

	return Model{
		session:       session,
		store:         store,
		resolver:      resolver,
		screen:        ScreenPicker,
		expanded:      store.PanelExpanded(),
		selectorInput: selector,
		inputFocused:  true,
		valueInput:    value,
		rows:          buildEditorRows(),
		statusMsg:     "Enter a selector to pick an element",
	}
}

// buildEditorRows flattens the registry into heading + property rows.
func buildEditorRows() []editorRow {
	var rows []editorRow
	var last css.Category
	for _, d := range css.Definitions() {
		if d.Category != last {
			rows = append(rows, editorRow{heading: d.Category})
			last = d.Category
		}
		rows = append(rows, editorRow{prop: d.Key})
	}
	return rows
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey routes keyboard input based on the current screen and focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.screen == ScreenPicker {
		return m.handlePickerKey(msg)
	}
	return m.handleEditorKey(msg)
}

// ── Picker screen ──

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.inputFocused {
		switch key {
		case "enter":
			m.resolveSelector()
			return m, nil
		case "esc":
			if m.session.Selected() != nil {
				m.screen = ScreenEditor
				return m, nil
			}
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.selectorInput, cmd = m.selectorInput.Update(msg)
			return m, cmd
		}
	}

	// Match list focused.
	switch key {
	case "q":
		return m, tea.Quit
	case "j", "down":
		m.selectedMatch = clamp(m.selectedMatch+1, 0, len(m.matches)-1)
	case "k", "up":
		m.selectedMatch = clamp(m.selectedMatch-1, 0, len(m.matches)-1)
	case "enter":
		m.selectMatch()
	case "/", "esc":
		m.inputFocused = true
		m.selectorInput.Focus()
	}
	return m, nil
}

// resolveSelector runs the selector against the page and shows the matches.
func (m *Model) resolveSelector() {
	selector := m.selectorInput.Value()
	if selector == "" {
		return
	}

	matches, err := m.resolver.Resolve(selector)
	if err != nil {
		m.setError(fmt.Sprintf("Selector failed: %v", err))
		return
	}
	if len(matches) == 0 {
		m.setStatus(fmt.Sprintf("No elements match %q", selector))
		return
	}

	m.matches = matches
	m.selectedMatch = 0
	m.inputFocused = false
	m.selectorInput.Blur()
	m.setStatus(fmt.Sprintf("%d elements match", len(matches)))
}

// selectMatch snapshots the chosen element and opens the editor. The
// previous element's diff, if any, is committed to session history.
func (m *Model) selectMatch() {
	if m.selectedMatch >= len(m.matches) {
		return
	}
	target := m.matches[m.selectedMatch]

	if err := m.session.Select(target); err != nil {
		m.setError(fmt.Sprintf("Select failed: %v", err))
		return
	}

	m.screen = ScreenEditor
	m.activePane = PaneEditor
	m.cursor = firstPropertyRow(m.rows)
	m.editing = false
	m.setStatus(fmt.Sprintf("Inspecting %s", target.Label()))
}

// ── Editor screen ──

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditingKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		m.screen = ScreenPicker
		m.inputFocused = true
		m.selectorInput.Focus()
		m.selectorInput.SetValue("")
		m.setStatus("Enter a selector to pick an element")
		return m, textinput.Blink

	case "tab":
		if m.expanded {
			m.activePane = (m.activePane + 1) % 2
		}

	case "j", "down":
		if m.activePane == PaneEditor {
			m.cursor = nextPropertyRow(m.rows, m.cursor, +1)
		} else {
			m.changesScroll++
		}

	case "k", "up":
		if m.activePane == PaneEditor {
			m.cursor = nextPropertyRow(m.rows, m.cursor, -1)
		} else if m.changesScroll > 0 {
			m.changesScroll--
		}

	case "enter":
		if m.activePane == PaneEditor {
			m.startEditing()
			return m, textinput.Blink
		}

	case "r":
		if err := m.session.ResetAll(); err != nil {
			m.setError(fmt.Sprintf("Reset failed: %v", err))
		} else {
			m.setStatus("Edits reset; element restored")
		}

	case "c":
		m.copyPrompt()

	case "p":
		m.expanded = !m.expanded
		m.activePane = PaneEditor
		m.store.SetPanelExpanded(m.expanded)
	}
	return m, nil
}

// handleEditingKey routes keys while a property value is being typed.
func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		prop := m.rows[m.cursor].prop
		if err := m.session.SetValue(prop, m.valueInput.Value()); err != nil {
			m.setError(fmt.Sprintf("Apply failed: %v", err))
		} else {
			m.setStatus(prompt.Summary(m.session.AllChanges()))
		}
		m.editing = false
		m.valueInput.Blur()
		return m, nil

	case "esc":
		m.editing = false
		m.valueInput.Blur()
		return m, nil

	default:
		var cmd tea.Cmd
		m.valueInput, cmd = m.valueInput.Update(msg)
		return m, cmd
	}
}

// startEditing opens the value input prefilled with the current value.
func (m *Model) startEditing() {
	row := m.rows[m.cursor]
	if row.prop == "" {
		return
	}
	m.editing = true
	m.valueInput.SetValue(m.session.GetValue(row.prop))
	m.valueInput.CursorEnd()
	m.valueInput.Focus()
}

// copyPrompt builds the change summary, writes it to the clipboard, and
// archives it. With zero changes the clipboard is never touched.
func (m *Model) copyPrompt() {
	changes := m.session.AllChanges()
	if len(changes) == 0 {
		m.setStatus("No changes to copy")
		return
	}

	text := prompt.Build(changes)
	if err := clipboard.WriteAll(text); err != nil {
		m.setError(fmt.Sprintf("Clipboard write failed: %v", err))
		return
	}

	_, err := m.store.ArchivePrompt(&database.ArchiveEntry{
		PageURL:     m.resolver.PageURL(),
		ChangeCount: len(changes),
		Summary:     prompt.Summary(changes),
		Prompt:      text,
	})
	if err != nil {
		m.setStatus(fmt.Sprintf("Copied %s (archive failed)", prompt.Summary(changes)))
		return
	}
	m.setStatus(fmt.Sprintf("Copied %s to clipboard", prompt.Summary(changes)))
}

func (m *Model) setStatus(s string) {
	m.statusMsg = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.statusMsg = s
	m.statusErr = true
}

// ── Row navigation helpers ──

// firstPropertyRow returns the index of the first non-heading row.
func firstPropertyRow(rows []editorRow) int {
	for i, r := range rows {
		if r.prop != "" {
			return i
		}
	}
	return 0
}

// nextPropertyRow moves the cursor by step, skipping heading rows.
func nextPropertyRow(rows []editorRow, cursor, step int) int {
	i := cursor
	for {
		i += step
		if i < 0 || i >= len(rows) {
			return cursor
		}
		if rows[i].prop != "" {
			return i
		}
	}
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)
	bodyHeight := m.height - 2

	var body string
	if m.screen == ScreenPicker {
		body = renderPicker(&m, bodyHeight)
	} else {
		body = m.renderEditorLayout(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderEditorLayout assembles the editor screen: the property editor on
// the left and, when the panel is expanded, the changes pane on the right.
func (m Model) renderEditorLayout(totalHeight int) string {
	if !m.expanded || m.width < 70 {
		return renderEditorPanel(&m, m.width, totalHeight)
	}

	leftWidth := m.width * 55 / 100
	rightWidth := m.width - leftWidth

	editor := renderEditorPanel(&m, leftWidth, totalHeight)
	changes := renderChangesPanel(&m, rightWidth, totalHeight)

	return lipgloss.JoinHorizontal(lipgloss.Top, editor, changes)
}
