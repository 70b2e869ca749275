// Package chirouter serves a localized route table through a go-chi router.
//
// Each named route is registered under its canonical pattern, behind
// middleware that detects the request language and rewrites localized paths
// to canonical form. Handlers keep using chi.URLParam as usual:
//
//	localized, err := chirouter.Router(table, base, map[string]http.Handler{
//		"terms":         termsHandler,
//		"terms.section": sectionHandler, // chi.URLParam(r, "section")
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	app := chi.NewRouter()
//	app.Mount("/", localized)
package chirouter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/polyroute/core/language"
	"github.com/dmitrymomot/polyroute/core/router"
	"github.com/dmitrymomot/polyroute/middleware"
)

// ErrMissingHandler is returned by Router when a registered route has no
// entry in the handlers map.
var ErrMissingHandler = errors.New("missing handler for route")

// Router builds a chi router serving every route of the table under its
// canonical pattern, wrapped in language detection and path rewriting. The
// handlers map is keyed by route name and must cover every registered route.
func Router(table *router.Table, base language.Context, handlers map[string]http.Handler) (chi.Router, error) {
	routes := table.Routes()
	for _, route := range routes {
		if handlers[route.Name] == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingHandler, route.Name)
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.Language(base))
	r.Use(middleware.Rewrite(table, base))
	r.Use(resetRoutePath)
	for _, route := range routes {
		r.Handle(route.Pattern, handlers[route.Name])
	}

	return r, nil
}

// resetRoutePath clears the chi routing path so tree matching recomputes it
// from the rewritten URL. Without this, a parent mux that mounted us has
// already pinned RoutePath to the pre-rewrite localized path.
func resetRoutePath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			rctx.RoutePath = ""
		}
		next.ServeHTTP(w, r)
	})
}

// URL builds the localized path for a named route using the language
// detected for the request. Falls back to base when the request did not
// pass through the Language middleware.
func URL(r *http.Request, table *router.Table, base language.Context, name string, params map[string]string) (string, error) {
	langCtx, ok := middleware.LanguageFromContext(r.Context())
	if !ok {
		langCtx = base
	}
	return table.Path(name, langCtx, params)
}
