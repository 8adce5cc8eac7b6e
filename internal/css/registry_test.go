package css

import "testing"

func TestRegistryHasNoDuplicates(t *testing.T) {
	seen := make(map[Property]bool)
	for _, d := range registry {
		if seen[d.Key] {
			t.Errorf("duplicate registry entry: %s", d.Key)
		}
		seen[d.Key] = true
	}
}

func TestRecognized(t *testing.T) {
	if !Recognized("fontSize") {
		t.Error("fontSize should be recognized")
	}
	if !Recognized("borderColor") {
		t.Error("borderColor should be recognized")
	}
	if Recognized("webkitScrollSnap") {
		t.Error("webkitScrollSnap should not be recognized")
	}
	if Recognized("") {
		t.Error("empty key should not be recognized")
	}
}

func TestIndexMatchesDeclarationOrder(t *testing.T) {
	all := All()
	for i, p := range all {
		if Index(p) != i {
			t.Errorf("Index(%s) = %d, want %d", p, Index(p), i)
		}
	}
	if Index("notAProperty") != -1 {
		t.Errorf("Index of unrecognized key should be -1")
	}
}

func TestSpacingPrecedesBorder(t *testing.T) {
	// Diff and prompt ordering guarantees depend on spacing properties
	// coming before border properties in the registry.
	if Index("paddingTop") > Index("borderColor") {
		t.Error("paddingTop must precede borderColor in registry order")
	}
}

func TestCSSName(t *testing.T) {
	if got := Property("paddingTop").CSSName(); got != "padding-top" {
		t.Errorf("CSSName(paddingTop) = %q", got)
	}
	if got := Property("width").CSSName(); got != "width" {
		t.Errorf("CSSName(width) = %q", got)
	}
}
