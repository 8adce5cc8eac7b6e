package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flarehq/flare/internal/css"
	"github.com/flarehq/flare/internal/database"
	"github.com/flarehq/flare/internal/inspector"
)

// ────────────────────────────────────────────────────────────
// Fakes
// ────────────────────────────────────────────────────────────

type fakeTarget struct {
	label    string
	computed map[css.Property]string
	inline   map[css.Property]string
}

func newFakeTarget(label string) *fakeTarget {
	return &fakeTarget{
		label: label,
		computed: map[css.Property]string{
			"display":  "block",
			"color":    "rgb(0, 0, 0)",
			"fontSize": "16px",
		},
		inline: make(map[css.Property]string),
	}
}

func (t *fakeTarget) Label() string { return t.label }

func (t *fakeTarget) ComputedStyle(props []css.Property) (map[css.Property]string, error) {
	return t.computed, nil
}

func (t *fakeTarget) SetInlineStyle(prop css.Property, value string) error {
	t.inline[prop] = value
	return nil
}

func (t *fakeTarget) ClearInlineStyle(prop css.Property) error {
	delete(t.inline, prop)
	return nil
}

type fakeResolver struct {
	targets []inspector.StyleTarget
	err     error
}

func (r *fakeResolver) PageURL() string { return "http://localhost:3000" }

func (r *fakeResolver) Resolve(selector string) ([]inspector.StyleTarget, error) {
	return r.targets, r.err
}

type fakeStore struct {
	prefs    map[string]string
	archived []*database.ArchiveEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{prefs: make(map[string]string)}
}

func (s *fakeStore) GetPref(key string) (string, error) { return s.prefs[key], nil }

func (s *fakeStore) SetPref(key, value string) error {
	s.prefs[key] = value
	return nil
}

func (s *fakeStore) PanelExpanded() bool {
	return s.prefs[database.PrefPanelExpanded] == "true"
}

func (s *fakeStore) SetPanelExpanded(expanded bool) {
	s.prefs[database.PrefPanelExpanded] = fmt.Sprintf("%t", expanded)
}

func (s *fakeStore) ArchivePrompt(entry *database.ArchiveEntry) (int64, error) {
	s.archived = append(s.archived, entry)
	return int64(len(s.archived)), nil
}

func (s *fakeStore) QueryArchive(limit int) ([]*database.ArchiveEntry, error) {
	return s.archived, nil
}

func (s *fakeStore) GetArchiveEntry(id int64) (*database.ArchiveEntry, error) {
	return nil, fmt.Errorf("not found")
}

func (s *fakeStore) Close() error { return nil }

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// ────────────────────────────────────────────────────────────
// Tests
// ────────────────────────────────────────────────────────────

func TestNewModelReadsPanelPref(t *testing.T) {
	store := newFakeStore()
	store.SetPanelExpanded(true)

	m := NewModel(inspector.NewSession(), store, &fakeResolver{})
	if !m.expanded {
		t.Error("expected panel expanded when the stored flag is true")
	}

	m = NewModel(inspector.NewSession(), newFakeStore(), &fakeResolver{})
	if m.expanded {
		t.Error("expected panel collapsed by default")
	}
}

func TestResolveAndSelectOpensEditor(t *testing.T) {
	target := newFakeTarget("div.card")
	resolver := &fakeResolver{targets: []inspector.StyleTarget{target}}
	session := inspector.NewSession()
	m := NewModel(session, newFakeStore(), resolver)

	m.selectorInput.SetValue(".card")
	m.resolveSelector()

	if len(m.matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(m.matches))
	}
	if m.inputFocused {
		t.Error("focus should move to the match list after resolving")
	}

	m.selectMatch()
	if m.screen != ScreenEditor {
		t.Error("selecting a match should open the editor screen")
	}
	if session.Selected() == nil || session.Selected().Label() != "div.card" {
		t.Errorf("session should hold the selected element, got %v", session.Selected())
	}
}

func TestResolveEmptyResultStaysOnPicker(t *testing.T) {
	m := NewModel(inspector.NewSession(), newFakeStore(), &fakeResolver{})

	m.selectorInput.SetValue(".nothing")
	m.resolveSelector()

	if m.screen != ScreenPicker {
		t.Error("no matches should keep the picker open")
	}
	if !m.inputFocused {
		t.Error("input should keep focus when nothing matched")
	}
}

func TestRowNavigationSkipsHeadings(t *testing.T) {
	rows := buildEditorRows()

	first := firstPropertyRow(rows)
	if rows[first].prop == "" {
		t.Fatal("firstPropertyRow landed on a heading")
	}

	// Walk forward across at least one category boundary.
	cursor := first
	for i := 0; i < 30; i++ {
		next := nextPropertyRow(rows, cursor, +1)
		if next == cursor {
			break
		}
		if rows[next].prop == "" {
			t.Fatalf("cursor landed on heading at row %d", next)
		}
		cursor = next
	}

	// Walking past the last row keeps the cursor in place.
	last := len(rows) - 1
	for rows[last].prop == "" {
		last--
	}
	if got := nextPropertyRow(rows, last, +1); got != last {
		t.Errorf("cursor moved past the last property row: %d", got)
	}
}

func TestCopyWithNoChangesSkipsArchive(t *testing.T) {
	store := newFakeStore()
	m := NewModel(inspector.NewSession(), store, &fakeResolver{})

	m.copyPrompt()

	if len(store.archived) != 0 {
		t.Error("nothing should be archived when there are no changes")
	}
	if !strings.Contains(m.statusMsg, "No changes") {
		t.Errorf("status should say there is nothing to copy, got %q", m.statusMsg)
	}
}

func TestPanelToggleIsPersisted(t *testing.T) {
	store := newFakeStore()
	session := inspector.NewSession()
	if err := session.Select(newFakeTarget("div.card")); err != nil {
		t.Fatal(err)
	}

	m := NewModel(session, store, &fakeResolver{})
	m.screen = ScreenEditor

	res, _ := m.handleEditorKey(keyMsg("p"))
	m = res.(Model)

	if !m.expanded {
		t.Error("p should expand the panel")
	}
	if !store.PanelExpanded() {
		t.Error("expanded state should be written to the store")
	}

	res, _ = m.handleEditorKey(keyMsg("p"))
	m = res.(Model)
	if store.PanelExpanded() {
		t.Error("collapsing should be written to the store")
	}
}

func TestEditApplyRecordsChange(t *testing.T) {
	target := newFakeTarget("div.card")
	session := inspector.NewSession()
	if err := session.Select(target); err != nil {
		t.Fatal(err)
	}

	m := NewModel(session, newFakeStore(), &fakeResolver{})
	m.screen = ScreenEditor
	m.cursor = firstPropertyRow(m.rows)

	// Move the cursor onto a property the fake has a value for.
	for m.rows[m.cursor].prop != "color" {
		next := nextPropertyRow(m.rows, m.cursor, +1)
		if next == m.cursor {
			t.Fatal("color row not found")
		}
		m.cursor = next
	}

	m.startEditing()
	if !m.editing {
		t.Fatal("enter on a property row should start editing")
	}
	if got := m.valueInput.Value(); got != "rgb(0, 0, 0)" {
		t.Errorf("input should prefill the current value, got %q", got)
	}

	m.valueInput.SetValue("#FF0000")
	res, _ := m.handleEditingKey(keyMsg("enter"))
	m = res.(Model)

	if m.editing {
		t.Error("apply should leave editing mode")
	}
	changes := session.AllChanges()
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if changes[0].NewValue != "#ff0000" {
		t.Errorf("value should be normalized, got %q", changes[0].NewValue)
	}
	if target.inline["color"] != "#ff0000" {
		t.Errorf("inline style not applied, got %q", target.inline["color"])
	}
}

func TestResetKeyRestoresElement(t *testing.T) {
	target := newFakeTarget("div.card")
	session := inspector.NewSession()
	if err := session.Select(target); err != nil {
		t.Fatal(err)
	}
	if err := session.SetValue("color", "red"); err != nil {
		t.Fatal(err)
	}

	m := NewModel(session, newFakeStore(), &fakeResolver{})
	m.screen = ScreenEditor

	res, _ := m.handleEditorKey(keyMsg("r"))
	m = res.(Model)

	if n := session.TotalChangeCount(); n != 0 {
		t.Errorf("reset should clear all changes, got %d", n)
	}
	if len(target.inline) != 0 {
		t.Errorf("reset should clear inline overrides, got %v", target.inline)
	}
}
