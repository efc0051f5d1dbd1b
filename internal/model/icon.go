package model

import "sort"

// Icon names form a closed set referencing display glyphs. Unrecognized
// names fall back to the default glyph.
const DefaultIcon = "Plus"

var iconGlyphs = map[string]string{
	"Plus":         "➕",
	"Utensils":     "🍴",
	"ShoppingCart": "🛒",
	"Car":          "🚗",
	"Home":         "🏠",
	"Film":         "🎬",
	"Briefcase":    "💼",
	"Heart":        "❤️",
	"Book":         "📚",
	"Sparkles":     "✨",
}

// IconGlyph resolves a symbolic icon name to its terminal glyph. Unknown
// names resolve to the default glyph.
func IconGlyph(name string) string {
	if glyph, ok := iconGlyphs[name]; ok {
		return glyph
	}
	return iconGlyphs[DefaultIcon]
}

// KnownIcon reports whether the symbolic name belongs to the icon set.
func KnownIcon(name string) bool {
	_, ok := iconGlyphs[name]
	return ok
}

// IconNames returns the symbolic names of all known icons, sorted for
// stable display.
func IconNames() []string {
	names := make([]string, 0, len(iconGlyphs))
	for name := range iconGlyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
