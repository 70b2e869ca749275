// Package router maintains a table of named routes whose static segments
// are translation maps, so one registration serves the same page under its
// localized path in every supported language.
//
// Routes are declared once at startup and the table is immutable afterward:
//
//	var (
//		en = language.MustNew("en")
//		nl = language.MustNew("nl")
//	)
//
//	terms := translation.MustNew(map[language.Language]string{
//		en: "general terms and conditions",
//		nl: "algemene voorwaarden",
//	})
//	termsSlug, _ := terms.Slugify()
//
//	table := router.New(router.WithCanonicalLanguage(en))
//	table.MustAdd("terms", router.Static(termsSlug))
//	table.MustAdd("terms.section", router.Static(termsSlug), router.Param("section"))
//
// Resolve matches a request path with the caller's language context; any
// supported language's form of the path resolves to the same route:
//
//	ctx := language.MustNewContext(nl, en, nl)
//	m, err := table.Resolve("/algemene-voorwaarden/payment", ctx)
//	// m.Route == "terms.section", m.Params["section"] == "payment"
//	// m.Canonical == "/general-terms-and-conditions/payment"
//
// Path goes the other way, rendering a route in the current language:
//
//	p, err := table.Path("terms", ctx, nil)
//	// "/algemene-voorwaarden"
//
// Routes are tried in registration order; register more specific routes
// first. A miss returns a *NoRouteError carrying the per-route causes,
// including the candidate translations each static segment would have
// accepted.
package router
