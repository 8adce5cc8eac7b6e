// Package css defines the fixed vocabulary of style properties Flare
// recognizes. The registry is a closed, ordered set known at build time:
// declaration order here is the canonical ordering of every diff and prompt
// the tool produces, regardless of the order edits were made in.
package css

import "github.com/flarehq/flare/pkg/cssutil"

// Property is a camelCase key naming one recognized CSS property.
type Property string

// Category groups related properties for the editor pane.
type Category string

const (
	CategoryLayout     Category = "Layout"
	CategorySpacing    Category = "Spacing"
	CategoryTypography Category = "Typography"
	CategoryBackground Category = "Background"
	CategoryBorder     Category = "Border"
	CategoryEffects    Category = "Effects"
)

// Definition pairs a property key with its editor category.
type Definition struct {
	Key      Property
	Category Category
}

// registry is the single source of truth for the recognized-property set.
// Do not reorder: diff output ordering depends on it.
var registry = []Definition{
	// Layout
	{"display", CategoryLayout},
	{"position", CategoryLayout},
	{"top", CategoryLayout},
	{"right", CategoryLayout},
	{"bottom", CategoryLayout},
	{"left", CategoryLayout},
	{"zIndex", CategoryLayout},
	{"width", CategoryLayout},
	{"minWidth", CategoryLayout},
	{"maxWidth", CategoryLayout},
	{"height", CategoryLayout},
	{"minHeight", CategoryLayout},
	{"maxHeight", CategoryLayout},
	{"boxSizing", CategoryLayout},
	{"overflow", CategoryLayout},
	{"flexDirection", CategoryLayout},
	{"flexWrap", CategoryLayout},
	{"justifyContent", CategoryLayout},
	{"alignItems", CategoryLayout},
	{"alignContent", CategoryLayout},
	{"flexGrow", CategoryLayout},
	{"flexShrink", CategoryLayout},
	{"flexBasis", CategoryLayout},
	{"gridTemplateColumns", CategoryLayout},
	{"gridTemplateRows", CategoryLayout},

	// Spacing
	{"marginTop", CategorySpacing},
	{"marginRight", CategorySpacing},
	{"marginBottom", CategorySpacing},
	{"marginLeft", CategorySpacing},
	{"paddingTop", CategorySpacing},
	{"paddingRight", CategorySpacing},
	{"paddingBottom", CategorySpacing},
	{"paddingLeft", CategorySpacing},
	{"gap", CategorySpacing},
	{"rowGap", CategorySpacing},
	{"columnGap", CategorySpacing},

	// Typography
	{"fontFamily", CategoryTypography},
	{"fontSize", CategoryTypography},
	{"fontWeight", CategoryTypography},
	{"fontStyle", CategoryTypography},
	{"lineHeight", CategoryTypography},
	{"letterSpacing", CategoryTypography},
	{"textAlign", CategoryTypography},
	{"textTransform", CategoryTypography},
	{"textDecorationLine", CategoryTypography},
	{"whiteSpace", CategoryTypography},
	{"color", CategoryTypography},

	// Background
	{"backgroundColor", CategoryBackground},
	{"backgroundImage", CategoryBackground},

	// Border
	{"borderWidth", CategoryBorder},
	{"borderStyle", CategoryBorder},
	{"borderColor", CategoryBorder},
	{"borderRadius", CategoryBorder},
	{"outlineColor", CategoryBorder},
	{"outlineWidth", CategoryBorder},

	// Effects
	{"opacity", CategoryEffects},
	{"boxShadow", CategoryEffects},
	{"textShadow", CategoryEffects},
	{"transform", CategoryEffects},
	{"transition", CategoryEffects},
	{"filter", CategoryEffects},
	{"cursor", CategoryEffects},
	{"visibility", CategoryEffects},
}

// index maps a property key to its position in the registry.
var index = func() map[Property]int {
	m := make(map[Property]int, len(registry))
	for i, d := range registry {
		m[d.Key] = i
	}
	return m
}()

// All returns every recognized property in canonical order.
func All() []Property {
	props := make([]Property, len(registry))
	for i, d := range registry {
		props[i] = d.Key
	}
	return props
}

// Definitions returns the full registry in canonical order.
func Definitions() []Definition {
	out := make([]Definition, len(registry))
	copy(out, registry)
	return out
}

// Recognized reports whether p belongs to the fixed vocabulary.
func Recognized(p Property) bool {
	_, ok := index[p]
	return ok
}

// Index returns the canonical position of p, or -1 for unrecognized keys.
func Index(p Property) int {
	i, ok := index[p]
	if !ok {
		return -1
	}
	return i
}

// CSSName returns the kebab-case name the browser expects for p.
// Example: Property("fontSize").CSSName() == "font-size".
func (p Property) CSSName() string {
	return cssutil.KebabCase(string(p))
}
