package fastdeck

import "strings"

// Section is anything that renders as a reveal.js <section>.
// *Slide and Group implement it.
type Section interface {
	SectionMarkup() string
}

// Group is a vertical stack of sections. It renders as an outer <section>
// wrapping each member's own section markup, which reveal.js shows as
// vertical slides. Groups may be nested.
type Group []Section

// SectionMarkup implements Section.
func (g Group) SectionMarkup() string {
	parts := make([]string, len(g))
	for i, s := range g {
		parts[i] = s.SectionMarkup()
	}
	return "<section>\n" + strings.Join(parts, "\n") + "</section>"
}

// Compile-time interface checks.
var (
	_ Section = Group(nil)
	_ Section = (*Slide)(nil)
)
