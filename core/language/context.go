package language

import (
	"slices"
	"strings"
)

// Context carries the language preferences for a single match or print call:
// the currently active language and the full ordered set of candidates.
// It is an immutable value type; the core never mutates a Context, so one
// value may be shared freely across goroutines.
type Context struct {
	current   Language
	available []Language
}

// NewContext builds a Context from the current language and the available
// candidate set. Duplicates are removed preserving first occurrence. If the
// current language is not among the available ones it is placed first, so
// Available always contains Current.
func NewContext(current Language, available ...Language) (Context, error) {
	if current.IsZero() {
		return Context{}, ErrZeroLanguage
	}

	langs := make([]Language, 0, len(available)+1)
	seen := make(map[Language]bool, len(available)+1)
	for _, l := range available {
		if l.IsZero() {
			return Context{}, ErrZeroLanguage
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		langs = append(langs, l)
	}

	if !seen[current] {
		langs = append([]Language{current}, langs...)
	}
	if len(langs) == 0 {
		return Context{}, ErrNoLanguages
	}

	return Context{current: current, available: langs}, nil
}

// MustNewContext is like NewContext but panics on error.
func MustNewContext(current Language, available ...Language) Context {
	ctx, err := NewContext(current, available...)
	if err != nil {
		panic(err)
	}
	return ctx
}

// Current returns the currently active language.
func (c Context) Current() Language {
	return c.current
}

// Available returns a copy of the candidate languages in their declared order.
func (c Context) Available() []Language {
	return slices.Clone(c.available)
}

// Contains reports whether l is among the available languages.
func (c Context) Contains(l Language) bool {
	return slices.Contains(c.available, l)
}

// Candidates returns the languages in match-probe order: the current language
// first, then the remaining available languages in their declared order. The
// current language appears exactly once.
func (c Context) Candidates() []Language {
	out := make([]Language, 0, len(c.available))
	out = append(out, c.current)
	for _, l := range c.available {
		if l != c.current {
			out = append(out, l)
		}
	}
	return out
}

// Switch returns a Context identical to c but with a different current
// language. The available set is unchanged; if next is not a member it is
// added at the front, mirroring NewContext.
func (c Context) Switch(next Language) (Context, error) {
	return NewContext(next, c.available...)
}

// Fingerprint returns a stable key describing the candidate set and its
// order. Used by derived caches; two Contexts with the same current language
// and the same available order share a fingerprint.
func (c Context) Fingerprint() string {
	var b strings.Builder
	b.WriteString(c.current.String())
	for _, l := range c.available {
		b.WriteByte(',')
		b.WriteString(l.String())
	}
	return b.String()
}
