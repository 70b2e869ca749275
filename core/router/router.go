package router

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/polyroute/core/language"
)

// Table is an ordered registry of named localized routes. Routes are added
// during application setup; afterwards the table is read-only and safe for
// concurrent Resolve and Path calls.
type Table struct {
	routes    []*route
	byName    map[string]*route
	logger    *slog.Logger
	canonical language.Language
}

// Option configures a Table during construction.
type Option func(*Table)

// WithLogger sets the logger used for resolve diagnostics.
// By default logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithCanonicalLanguage sets the language whose translations name the
// canonical patterns reported by Routes and Match.Canonical. Without it the
// first language (sorted by tag) of each segment's map is used.
func WithCanonicalLanguage(l language.Language) Option {
	return func(t *Table) {
		t.canonical = l
	}
}

// New creates an empty route table.
func New(opts ...Option) *Table {
	t := &Table{
		byName: make(map[string]*route),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Add registers a route under a unique name. Segments are matched in order
// against the path segments of incoming requests.
func (t *Table) Add(name string, segments ...Segment) error {
	if name == "" {
		return ErrEmptyRouteName
	}
	if _, exists := t.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRoute, name)
	}
	if len(segments) == 0 {
		return fmt.Errorf("%w: %q", ErrNoSegments, name)
	}

	params := make(map[string]bool)
	for i, seg := range segments {
		switch {
		case seg.IsParam():
			if params[seg.param] {
				return fmt.Errorf("%w: %q in route %q", ErrDuplicateParam, seg.param, name)
			}
			params[seg.param] = true
		case seg.translations.IsZero():
			return fmt.Errorf("%w: segment %d of route %q", ErrInvalidSegment, i, name)
		}
	}

	r := &route{name: name, segments: segments}
	t.routes = append(t.routes, r)
	t.byName[name] = r
	return nil
}

// MustAdd is like Add but panics on error. Intended for route tables
// declared at application start.
func (t *Table) MustAdd(name string, segments ...Segment) {
	if err := t.Add(name, segments...); err != nil {
		panic(err)
	}
}

// Routes returns all registered routes with their canonical patterns, in
// registration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	for i, r := range t.routes {
		out[i] = Route{Name: r.name, Pattern: t.canonicalPattern(r)}
	}
	return out
}
