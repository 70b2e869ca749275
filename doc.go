// Package polyroute routes multilingual URL paths: the same page is
// reachable under its localized path in every supported language, and URLs
// are generated in the language of the current request.
//
// # Package Organization
//
//   - core/language: validated language identifiers and the per-call
//     language context (current language + ordered candidate set).
//   - core/translation: immutable per-language string tables with a
//     slugified view and diagnostic rendering.
//   - core/segment: the matching/printing engine over input and output
//     cursors, with structured failure payloads.
//   - core/router: named localized routes, path resolution, and URL
//     generation.
//   - core/config: environment-based configuration loading.
//   - core/logger: slog attribute helpers.
//   - middleware: net/http language detection, canonical path rewriting,
//     and request IDs.
//   - adapter/chirouter: serving a route table through go-chi.
//   - pkg/slug: URL-safe slug generation with Unicode folding.
//
// # Quick Start
//
//	var (
//		en = polyroute.MustNewLanguage("en")
//		nl = polyroute.MustNewLanguage("nl")
//	)
//
//	base := language.MustNewContext(en, en, nl)
//
//	terms, _ := translation.MustNew(map[language.Language]string{
//		en: "general terms and conditions",
//		nl: "algemene voorwaarden",
//	}).Slugify()
//
//	table := router.New(router.WithCanonicalLanguage(en))
//	table.MustAdd("terms", router.Static(terms))
//
//	// "/algemene-voorwaarden" and "/general-terms-and-conditions" now
//	// resolve to the "terms" route; table.Path("terms", ctx, nil) renders
//	// the one matching ctx's current language.
package polyroute
