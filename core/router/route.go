package router

import (
	"strings"

	"github.com/dmitrymomot/polyroute/core/translation"
)

// Segment is one element of a route pattern: either a static localized
// token backed by a translation map, or a named parameter capturing whatever
// the request path carries at that position.
type Segment struct {
	param        string
	translations translation.Map
}

// Static creates a segment matched against the given translation map.
// Slugify the map first if the raw translations contain spaces or
// punctuation; the router never transforms text implicitly.
func Static(m translation.Map) Segment {
	return Segment{translations: m}
}

// Param creates a named parameter segment. The captured value is available
// under this name in Match.Params.
func Param(name string) Segment {
	return Segment{param: name}
}

// IsParam reports whether the segment captures a parameter.
func (s Segment) IsParam() bool {
	return s.param != ""
}

// Route describes a registered route for introspection.
type Route struct {
	// Name is the unique route name used for Path lookups.
	Name string
	// Pattern is the canonical pattern, parameters in {name} form, e.g.
	// "/terms/{section}".
	Pattern string
}

// route is the internal representation of a registered route.
type route struct {
	name     string
	segments []Segment
}

// canonicalToken renders a segment in the table's canonical language.
// Params render as "{name}" placeholders.
func (t *Table) canonicalToken(s Segment) string {
	if s.IsParam() {
		return "{" + s.param + "}"
	}
	if !t.canonical.IsZero() {
		if v, ok := s.translations.Get(t.canonical); ok {
			return v
		}
	}
	// Fall back to the first language in sorted order for maps that do not
	// cover the canonical language.
	langs := s.translations.Languages()
	v, _ := s.translations.Get(langs[0])
	return v
}

// canonicalPattern renders the whole route with parameter placeholders.
func (t *Table) canonicalPattern(r *route) string {
	var b strings.Builder
	for _, seg := range r.segments {
		b.WriteByte('/')
		b.WriteString(t.canonicalToken(seg))
	}
	return b.String()
}

// canonicalPath renders the route with captured parameter values in place
// of placeholders.
func (t *Table) canonicalPath(r *route, params map[string]string) string {
	var b strings.Builder
	for _, seg := range r.segments {
		b.WriteByte('/')
		if seg.IsParam() {
			b.WriteString(params[seg.param])
		} else {
			b.WriteString(t.canonicalToken(seg))
		}
	}
	return b.String()
}
