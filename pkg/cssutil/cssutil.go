// Package cssutil provides CSS property-name and value utilities for Flare.
//
// These helpers are used throughout the codebase for converting between the
// camelCase property keys of the registry and the kebab-case names the
// browser expects, and for normalizing user-typed values before diffing.
package cssutil

import (
	"strings"
	"unicode"
)

// KebabCase converts a camelCase property key to its kebab-case CSS name.
// Example: "borderTopWidth" -> "border-top-width".
func KebabCase(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CamelCase converts a kebab-case CSS name to the camelCase key form.
// Example: "font-size" -> "fontSize".
func CamelCase(name string) string {
	parts := strings.Split(name, "-")
	var b strings.Builder
	b.Grow(len(name))
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// NormalizeValue canonicalizes a style value for comparison: surrounding
// whitespace is trimmed, internal runs of whitespace collapse to one space,
// and hex color literals are lowercased. Computed values returned by the
// browser are already canonical, so this only has to absorb typing variance.
func NormalizeValue(v string) string {
	fields := strings.Fields(v)
	for i, f := range fields {
		if strings.HasPrefix(f, "#") {
			fields[i] = strings.ToLower(f)
		}
	}
	return strings.Join(fields, " ")
}

// TruncateValue cuts a value to maxLen runes, appending an ellipsis marker
// when truncation occurred. Used for display in the TUI and archive listing.
func TruncateValue(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
