package router

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Registration errors
	ErrEmptyRouteName = errors.New("route name cannot be empty")
	ErrDuplicateRoute = errors.New("duplicate route name")
	ErrNoSegments     = errors.New("route needs at least one segment")
	ErrInvalidSegment = errors.New("invalid segment")
	ErrDuplicateParam = errors.New("duplicate parameter name")

	// Resolve errors
	ErrNoRoute        = errors.New("no route matched")
	ErrSegmentCount   = errors.New("segment count mismatch")
	ErrPartialSegment = errors.New("translation does not span the path segment")
	ErrEmptyParam     = errors.New("empty parameter segment")

	// Path errors
	ErrUnknownRoute = errors.New("unknown route")
	ErrMissingParam = errors.New("missing parameter")
)

// Attempt records why one route did not match during Resolve.
type Attempt struct {
	Route string
	Cause error
}

// NoRouteError reports that no registered route matched a path. Attempts
// hold the per-route causes in registration order; hosts typically treat
// this error as a 404 and log the attempts.
type NoRouteError struct {
	Path     string
	Attempts []Attempt
}

func (e *NoRouteError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("no route matched path %q: no routes registered", e.Path)
	}
	names := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		names[i] = a.Route
	}
	return fmt.Sprintf("no route matched path %q, tried [%s]", e.Path, strings.Join(names, ", "))
}

// Unwrap makes errors.Is(err, ErrNoRoute) work.
func (e *NoRouteError) Unwrap() error {
	return ErrNoRoute
}
