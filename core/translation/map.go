package translation

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/polyroute/core/language"
	"github.com/dmitrymomot/polyroute/pkg/slug"
)

// Map holds one translation per language for a single routable concept, e.g.
// a route's human-readable name in every supported language. It is immutable
// after construction, making it safe for concurrent use; transformations
// like Slugify return a new Map.
type Map struct {
	entries map[language.Language]string
}

// New builds a Map from per-language entries. Construction validates what
// matching cannot recover from later: the map must be non-empty, keys must
// be valid languages, and values must be non-empty (an empty translation
// would match trivially at any cursor position, short-circuiting fallback).
func New(entries map[language.Language]string) (Map, error) {
	if len(entries) == 0 {
		return Map{}, ErrEmptyMap
	}

	copied := make(map[language.Language]string, len(entries))
	for l, v := range entries {
		if l.IsZero() {
			return Map{}, ErrInvalidLanguage
		}
		if v == "" {
			return Map{}, fmt.Errorf("%w: language %q", ErrEmptyTranslation, l)
		}
		copied[l] = v
	}

	return Map{entries: copied}, nil
}

// MustNew is like New but panics on error. Intended for route-table literals
// defined at application start.
func MustNew(entries map[language.Language]string) Map {
	m, err := New(entries)
	if err != nil {
		panic(err)
	}
	return m
}

// Get returns the translation for l.
func (m Map) Get(l language.Language) (string, bool) {
	v, ok := m.entries[l]
	return v, ok
}

// Len returns the number of languages in the map.
func (m Map) Len() int {
	return len(m.entries)
}

// IsZero reports whether the map was not built through New.
func (m Map) IsZero() bool {
	return m.entries == nil
}

// Languages returns the map's languages sorted by tag for deterministic
// iteration.
func (m Map) Languages() []language.Language {
	langs := slices.Collect(maps.Keys(m.entries))
	slices.SortFunc(langs, func(a, b language.Language) int {
		return strings.Compare(a.String(), b.String())
	})
	return langs
}

// Values returns all translations deduplicated and sorted lexicographically.
func (m Map) Values() []string {
	seen := make(map[string]bool, len(m.entries))
	values := make([]string, 0, len(m.entries))
	for _, v := range m.entries {
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	slices.Sort(values)
	return values
}

// Equal reports whether both maps hold exactly the same entries.
func (m Map) Equal(other Map) bool {
	return maps.Equal(m.entries, other.entries)
}

// Slugify returns a new Map with every translation passed through
// slug.Make. The receiver is unchanged. It fails if any translation slugs
// down to an empty string (e.g. text in an unsupported script), since the
// result would violate the non-empty invariant.
func (m Map) Slugify(opts ...slug.Option) (Map, error) {
	slugged := make(map[language.Language]string, len(m.entries))
	for l, v := range m.entries {
		s := slug.Make(v, opts...)
		if s == "" {
			return Map{}, fmt.Errorf("%w: language %q, value %q", ErrEmptySlug, l, v)
		}
		slugged[l] = s
	}
	return Map{entries: slugged}, nil
}

// Fingerprint returns a stable content key: entries rendered as "tag=value"
// pairs, sorted by tag, joined with ";". Two maps with equal entries share a
// fingerprint. Used by derived caches.
func (m Map) Fingerprint() string {
	var b strings.Builder
	for i, l := range m.Languages() {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(l.String())
		b.WriteByte('=')
		b.WriteString(m.entries[l])
	}
	return b.String()
}
