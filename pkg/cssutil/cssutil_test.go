package cssutil

import "testing"

func TestKebabCase(t *testing.T) {
	cases := map[string]string{
		"width":           "width",
		"fontSize":        "font-size",
		"borderTopWidth":  "border-top-width",
		"backgroundColor": "background-color",
	}
	for in, want := range cases {
		if got := KebabCase(in); got != want {
			t.Errorf("KebabCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCamelCase(t *testing.T) {
	cases := map[string]string{
		"width":            "width",
		"font-size":        "fontSize",
		"border-top-width": "borderTopWidth",
	}
	for in, want := range cases {
		if got := CamelCase(in); got != want {
			t.Errorf("CamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCamelKebabRoundTrip(t *testing.T) {
	for _, key := range []string{"width", "paddingTop", "borderBottomLeftRadius"} {
		if got := CamelCase(KebabCase(key)); got != key {
			t.Errorf("round trip of %q produced %q", key, got)
		}
	}
}

func TestNormalizeValue(t *testing.T) {
	cases := map[string]string{
		"  12px ":              "12px",
		"1px   solid   black":  "1px solid black",
		"#FF0000":              "#ff0000",
		"1px solid #AABBCC":    "1px solid #aabbcc",
		"":                     "",
		"\tflex\n":             "flex",
		"rgb(255, 0, 0)":       "rgb(255, 0, 0)",
	}
	for in, want := range cases {
		if got := NormalizeValue(in); got != want {
			t.Errorf("NormalizeValue(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncateValue(t *testing.T) {
	if got := TruncateValue("short", 10); got != "short" {
		t.Errorf("expected no truncation, got %q", got)
	}
	if got := TruncateValue("a very long style value", 10); got != "a very ..." {
		t.Errorf("expected truncated value, got %q", got)
	}
	if got := TruncateValue("abcdef", 2); got != "ab" {
		t.Errorf("expected hard cut for tiny max, got %q", got)
	}
}
