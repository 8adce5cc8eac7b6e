// Package inspector implements Flare's change-tracking core: the style
// snapshot reader and the per-session edit tracker.
//
// A Session owns the currently selected element, its original computed-style
// snapshot, and the set of live edits layered on top. Edits are applied to
// the page immediately through the element's inline style; the diff against
// the snapshot is always derived, never stored.
package inspector

import (
	"errors"
	"fmt"

	"github.com/flarehq/flare/internal/css"
	"github.com/flarehq/flare/pkg/cssutil"
)

// Change is one property difference: where a value moved from and to, and
// which element it belongs to. Derived by diffing; never stored as state.
type Change struct {
	Element  string
	Property css.Property
	OldValue string
	NewValue string
}

// Session tracks style edits over the lifetime of one inspection run.
//
// Edits from previously selected elements accumulate: selecting a new
// element commits the outgoing element's diff into session history, so the
// prompt covers every change made during the run, not just the last element.
//
// Session is not safe for concurrent use. All calls happen on the UI event
// loop; every operation completes synchronously within one event.
type Session struct {
	target    StyleTarget
	snapshot  Snapshot
	edits     map[css.Property]string
	history   []Change
	observers []func()
}

// NewSession creates an empty session with no element selected.
func NewSession() *Session {
	return &Session{edits: make(map[css.Property]string)}
}

// Subscribe registers fn to be called after every state change. The UI layer
// uses this to re-render; fn must not call back into the session.
func (s *Session) Subscribe(fn func()) {
	s.observers = append(s.observers, fn)
}

func (s *Session) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

// Selected returns the current element, or nil if none is selected.
func (s *Session) Selected() StyleTarget {
	return s.target
}

// Snapshot returns the original computed value of prop for the current
// element, or "" when nothing is selected.
func (s *Session) Snapshot(prop css.Property) string {
	return s.snapshot[prop]
}

// Select makes target the current element. The element's computed style is
// snapshotted once, now; the previous element's diff (if any) is committed
// to session history first. On capture failure the previous selection is
// kept intact.
func (s *Session) Select(target StyleTarget) error {
	snap, err := Capture(target)
	if err != nil {
		return err
	}

	s.commitCurrent()
	s.target = target
	s.snapshot = snap
	s.edits = make(map[css.Property]string)
	s.notify()
	return nil
}

// Deselect commits the current element's diff to history and clears the
// selection. Inline overrides stay applied on the page.
func (s *Session) Deselect() {
	s.commitCurrent()
	s.target = nil
	s.snapshot = nil
	s.edits = make(map[css.Property]string)
	s.notify()
}

// commitCurrent moves the live diff into history.
func (s *Session) commitCurrent() {
	s.history = append(s.history, s.currentDiff()...)
}

// GetValue returns the edited value of prop if present, else the snapshot
// value, else "".
func (s *Session) GetValue(prop css.Property) string {
	if v, ok := s.edits[prop]; ok {
		return v
	}
	return s.snapshot[prop]
}

// Edited reports whether prop currently carries an override on the
// selected element.
func (s *Session) Edited(prop css.Property) bool {
	_, ok := s.edits[prop]
	return ok
}

// SetValue records value as the new setting for prop and applies it to the
// element's live inline style, so the page reflects the edit immediately.
//
// A value that normalizes to the snapshot value — or to the empty string —
// clears the override instead: the property is removed from the edit set and
// its inline declaration is cleared, falling back to the original cascade.
// Unrecognized properties and calls with no selection are silent no-ops.
func (s *Session) SetValue(prop css.Property, value string) error {
	if s.target == nil || !css.Recognized(prop) {
		return nil
	}

	norm := cssutil.NormalizeValue(value)
	orig := cssutil.NormalizeValue(s.snapshot[prop])

	if norm == "" || norm == orig {
		if _, edited := s.edits[prop]; !edited {
			return nil
		}
		if err := s.target.ClearInlineStyle(prop); err != nil {
			return fmt.Errorf("clearing %s on %s: %w", prop, s.target.Label(), err)
		}
		delete(s.edits, prop)
		s.notify()
		return nil
	}

	if err := s.target.SetInlineStyle(prop, norm); err != nil {
		return fmt.Errorf("applying %s=%q to %s: %w", prop, norm, s.target.Label(), err)
	}
	s.edits[prop] = norm
	s.notify()
	return nil
}

// AllChanges returns every change entry of the session: committed history
// from previously selected elements followed by the current element's live
// diff. Within each element, entries follow registry declaration order, so
// output is deterministic regardless of edit order.
func (s *Session) AllChanges() []Change {
	changes := make([]Change, 0, len(s.history))
	changes = append(changes, s.history...)
	changes = append(changes, s.currentDiff()...)
	return changes
}

// currentDiff derives the current element's change entries in registry order.
func (s *Session) currentDiff() []Change {
	if s.target == nil || len(s.edits) == 0 {
		return nil
	}

	var diff []Change
	for _, prop := range css.All() {
		edited, ok := s.edits[prop]
		if !ok {
			continue
		}
		diff = append(diff, Change{
			Element:  s.target.Label(),
			Property: prop,
			OldValue: s.snapshot[prop],
			NewValue: edited,
		})
	}
	return diff
}

// TotalChangeCount is the number of entries AllChanges would return. Drives
// the panel badge.
func (s *Session) TotalChangeCount() int {
	return len(s.history) + len(s.currentDiff())
}

// ResetAll clears the current element's edit set and removes every inline
// override it applied, restoring the pre-edit computed appearance. Calling
// it with nothing edited, or twice in a row, is a no-op.
func (s *Session) ResetAll() error {
	if s.target == nil || len(s.edits) == 0 {
		return nil
	}

	var errs []error
	for prop := range s.edits {
		if err := s.target.ClearInlineStyle(prop); err != nil {
			errs = append(errs, fmt.Errorf("clearing %s: %w", prop, err))
		}
	}
	s.edits = make(map[css.Property]string)
	s.notify()
	return errors.Join(errs...)
}
