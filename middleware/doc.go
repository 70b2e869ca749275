// Package middleware provides net/http middleware for localized routing:
// per-request language detection, localized-to-canonical path rewriting, and
// request ID tagging.
//
// Typical chain, outermost first:
//
//	base := language.MustNewContext(en, en, nl)
//
//	handler := middleware.RequestID()(
//		middleware.Language(base)(
//			middleware.Rewrite(table, base)(mux),
//		),
//	)
//
// Handlers read the detected language and the resolved route from the
// request context via LanguageFromContext and MatchFromContext.
package middleware
