package prompt

import (
	"strings"
	"testing"

	"github.com/flarehq/flare/internal/inspector"
)

func sampleEntries() []inspector.Change {
	return []inspector.Change{
		{Element: "div.card", Property: "paddingTop", OldValue: "8px", NewValue: "12px"},
		{Element: "div.card", Property: "borderColor", OldValue: "rgb(0, 0, 0)", NewValue: "#ff0000"},
		{Element: "span#price", Property: "color", OldValue: "rgb(0, 0, 0)", NewValue: "rgb(255, 0, 0)"},
	}
}

func TestBuildEmptyReturnsSentinel(t *testing.T) {
	if got := Build(nil); got != EmptyMessage {
		t.Errorf("Build(nil) = %q, want sentinel", got)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := Build(sampleEntries())
	b := Build(sampleEntries())
	if a != b {
		t.Error("Build is not deterministic for identical input")
	}
}

func TestBuildContainsAllEntriesInOrder(t *testing.T) {
	out := Build(sampleEntries())

	for _, want := range []string{
		"div.card:",
		`- paddingTop: from "8px" to "12px"`,
		`- borderColor: from "rgb(0, 0, 0)" to "#ff0000"`,
		"span#price:",
		`- color: from "rgb(0, 0, 0)" to "rgb(255, 0, 0)"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n---\n%s", want, out)
		}
	}

	// paddingTop must come before borderColor, matching input order.
	if strings.Index(out, "paddingTop") > strings.Index(out, "borderColor") {
		t.Error("entry order not preserved in output")
	}
	// Element groups appear in first-appearance order.
	if strings.Index(out, "div.card:") > strings.Index(out, "span#price:") {
		t.Error("element group order not preserved")
	}
}

func TestBuildGroupsByElement(t *testing.T) {
	out := Build(sampleEntries())
	if strings.Count(out, "div.card:") != 1 {
		t.Errorf("expected exactly one heading per element, got:\n%s", out)
	}
}

func TestSummary(t *testing.T) {
	if got := Summary(nil); got != "no changes" {
		t.Errorf("Summary(nil) = %q", got)
	}
	if got := Summary(sampleEntries()); got != "3 changes across 2 elements" {
		t.Errorf("Summary = %q", got)
	}
	one := sampleEntries()[:1]
	if got := Summary(one); got != "1 change across 1 element" {
		t.Errorf("Summary = %q", got)
	}
}
