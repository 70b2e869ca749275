package middleware

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/polyroute/core/language"
	"github.com/dmitrymomot/polyroute/core/router"
)

// matchContextKey is used as a key for storing the resolved route match in
// the request context.
type matchContextKey struct{}

// Rewrite resolves localized request paths against the route table and
// rewrites them to their canonical form before the downstream handler runs.
// A host router mounted beneath only ever sees canonical patterns, no
// matter which language's form of the URL the client requested.
//
// The language context comes from the Language middleware when present,
// otherwise from fallback. Paths that do not resolve pass through unchanged,
// so non-localized routes keep working.
func Rewrite(table *router.Table, fallback language.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			langCtx, ok := LanguageFromContext(r.Context())
			if !ok {
				langCtx = fallback
			}

			m, err := table.Resolve(r.URL.Path, langCtx)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			r2 := r.Clone(context.WithValue(r.Context(), matchContextKey{}, m))
			r2.URL.Path = m.Canonical
			r2.URL.RawPath = ""
			next.ServeHTTP(w, r2)
		})
	}
}

// MatchFromContext retrieves the route match stored by the Rewrite
// middleware. The second return value is false when the request path did
// not resolve to a localized route.
func MatchFromContext(ctx context.Context) (*router.Match, bool) {
	m, ok := ctx.Value(matchContextKey{}).(*router.Match)
	return m, ok
}
