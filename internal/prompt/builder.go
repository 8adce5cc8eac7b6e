// Package prompt renders accumulated style changes into the text block the
// user pastes into an external AI coding assistant.
//
// Build is a deterministic pure function: the same entry sequence always
// produces the same string, with entries grouped by element in input order.
package prompt

import (
	"fmt"
	"strings"

	"github.com/flarehq/flare/internal/inspector"
	"github.com/samber/lo"
)

// EmptyMessage is the sentinel returned when there are no changes to
// describe. Callers that can refuse to build at all (the copy action)
// should do so instead of emitting it.
const EmptyMessage = "No style changes were made in this session."

// Build renders the change entries as a descriptive plain-text block.
// Entries belonging to the same element are grouped under one heading;
// groups appear in the order their element first appears in the input.
func Build(entries []inspector.Change) string {
	if len(entries) == 0 {
		return EmptyMessage
	}

	var b strings.Builder
	b.WriteString("I visually adjusted some elements on the page. ")
	b.WriteString("Please update the styles accordingly:\n")

	lastElement := ""
	for _, e := range entries {
		if e.Element != lastElement {
			b.WriteString(fmt.Sprintf("\n%s:\n", e.Element))
			lastElement = e.Element
		}
		b.WriteString(fmt.Sprintf("- %s: from %q to %q\n", e.Property, e.OldValue, e.NewValue))
	}

	b.WriteString("\nKeep all other styles unchanged.\n")
	return b.String()
}

// Summary returns a short status line for the panel badge and the archive
// listing, e.g. "3 changes across 2 elements".
func Summary(entries []inspector.Change) string {
	if len(entries) == 0 {
		return "no changes"
	}

	elements := len(lo.UniqBy(entries, func(e inspector.Change) string { return e.Element }))

	changeWord := "changes"
	if len(entries) == 1 {
		changeWord = "change"
	}
	elementWord := "elements"
	if elements == 1 {
		elementWord = "element"
	}
	return fmt.Sprintf("%d %s across %d %s", len(entries), changeWord, elements, elementWord)
}
