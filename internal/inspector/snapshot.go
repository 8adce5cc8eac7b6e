package inspector

import (
	"fmt"

	"github.com/flarehq/flare/internal/css"
)

// StyleTarget is a selectable element on the live page. The browser package
// provides the real CDP-backed implementation; tests use an in-memory fake.
// This abstraction keeps the tracker independent of the transport.
type StyleTarget interface {
	// Label returns a short selector-like identity for the element,
	// e.g. "button#submit" or "div.card". Used to group change entries.
	Label() string

	// ComputedStyle resolves the current effective value of each given
	// property. Values are returned exactly as the browser resolved them.
	ComputedStyle(props []css.Property) (map[css.Property]string, error)

	// SetInlineStyle applies value as an inline declaration, overriding
	// the cascade for the given property.
	SetInlineStyle(prop css.Property, value string) error

	// ClearInlineStyle removes the inline declaration for the given
	// property, letting the original cascade value win again.
	ClearInlineStyle(prop css.Property) error
}

// Snapshot holds the original resolved values for a selected element,
// captured exactly once at selection time. It is the diff baseline and is
// never mutated afterward.
type Snapshot map[css.Property]string

// Capture reads the resolved style of target for every recognized property.
// Pure read; the cost is one resolution pass over the fixed registry.
func Capture(target StyleTarget) (Snapshot, error) {
	values, err := target.ComputedStyle(css.All())
	if err != nil {
		return nil, fmt.Errorf("capturing snapshot for %s: %w", target.Label(), err)
	}

	snap := make(Snapshot, len(values))
	for prop, val := range values {
		if css.Recognized(prop) {
			snap[prop] = val
		}
	}
	return snap, nil
}
