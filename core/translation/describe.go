package translation

import (
	"strings"

	"github.com/dmitrymomot/polyroute/pkg/slug"
)

// slugMarker annotates entries whose slugified form differs from the raw
// translation in DescribeSlugs output.
const slugMarker = " → "

// String renders all entries as "tag: value" pairs sorted by tag, e.g.
// "en: home, nl: thuis". Output is deterministic and intended for logs and
// error messages.
func (m Map) String() string {
	var b strings.Builder
	for i, l := range m.Languages() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(l.String())
		b.WriteString(": ")
		b.WriteString(m.entries[l])
	}
	return b.String()
}

// DescribeSlugs renders one line per language showing the raw translation
// and, when it differs, the slugified form after a transformation marker:
//
//	en: general terms and conditions → general-terms-and-conditions
//	nl: voorwaarden
//
// Purely diagnostic; output is sorted by tag and deterministic.
func (m Map) DescribeSlugs(opts ...slug.Option) string {
	var b strings.Builder
	for i, l := range m.Languages() {
		if i > 0 {
			b.WriteByte('\n')
		}
		raw := m.entries[l]
		b.WriteString(l.String())
		b.WriteString(": ")
		b.WriteString(raw)
		if slugged := slug.Make(raw, opts...); slugged != raw {
			b.WriteString(slugMarker)
			b.WriteString(slugged)
		}
	}
	return b.String()
}
