package router

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/polyroute/core/language"
	"github.com/dmitrymomot/polyroute/core/logger"
	"github.com/dmitrymomot/polyroute/core/segment"
)

// Match is the result of a successful Resolve.
type Match struct {
	// Route is the name of the matched route.
	Route string
	// Params holds captured parameter segments by name.
	Params map[string]string
	// Canonical is the matched path rendered in the table's canonical
	// language with parameter values substituted, e.g. "/terms/payment".
	Canonical string
}

// Resolve matches a request path against the registered routes using the
// given language context. Routes are tried in registration order and the
// first full match wins. On a miss, every route's failure is collected into
// a *NoRouteError so callers can log why nothing matched.
func (t *Table) Resolve(path string, ctx language.Context) (*Match, error) {
	parts := splitPath(path)

	var attempts []Attempt
	for _, r := range t.routes {
		params, err := t.tryRoute(r, parts, ctx)
		if err != nil {
			attempts = append(attempts, Attempt{Route: r.name, Cause: err})
			continue
		}

		return &Match{
			Route:     r.name,
			Params:    params,
			Canonical: t.canonicalPath(r, params),
		}, nil
	}

	err := &NoRouteError{Path: path, Attempts: attempts}
	t.logger.Debug("no route resolved",
		logger.Component("router"),
		logger.Path(path),
		logger.Language(ctx.Current().String()),
		logger.Count("routes_tried", len(attempts)),
	)
	return nil, err
}

// tryRoute matches one route against the path segments, returning captured
// params on success.
func (t *Table) tryRoute(r *route, parts []string, ctx language.Context) (map[string]string, error) {
	if len(parts) != len(r.segments) {
		return nil, fmt.Errorf("%w: path has %d segments, route has %d",
			ErrSegmentCount, len(parts), len(r.segments))
	}

	var params map[string]string
	for i, seg := range r.segments {
		part := parts[i]

		if seg.IsParam() {
			if part == "" {
				return nil, fmt.Errorf("%w: %q at segment %d", ErrEmptyParam, seg.param, i)
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[seg.param] = part
			continue
		}

		// Whole-segment anchoring: the translation must span the entire path
		// segment, not just prefix it.
		in := segment.NewInput(part)
		if _, err := segment.Match(in, seg.translations, ctx); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		if !in.Empty() {
			return nil, fmt.Errorf("%w: segment %d, %q left over", ErrPartialSegment, i, in.Remaining())
		}
	}

	return params, nil
}

// splitPath splits a request path into its segments. Leading and trailing
// slashes are ignored, so "/about/" and "/about" resolve identically.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
