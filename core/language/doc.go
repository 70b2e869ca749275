// Package language models the language set an application serves: validated
// BCP 47 identifiers and the per-call Context that carries the currently
// active language plus the ordered candidate set.
//
// Languages are canonicalized at construction, so differently-cased tags
// compare equal after parsing:
//
//	en := language.MustNew("en")
//	nl := language.MustNew("NL") // canonicalized to "nl"
//
// A Context is built once per scope (application default, or per request
// after detection) and threaded explicitly through every match and print
// call; nothing in this module reads ambient global state:
//
//	ctx, err := language.NewContext(nl, en, nl, de)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctx.Candidates() // [nl en de] — current language probed first
//
// For HTTP servers, ParseAcceptLanguage resolves the best supported language
// from an Accept-Language header:
//
//	best := language.ParseAcceptLanguage("en-US,en;q=0.9,nl;q=0.8", ctx.Available())
//
// The application-wide language set is typically declared through the
// environment (see Config) and loaded with core/config:
//
//	var cfg language.Config
//	config.MustLoad(&cfg)
//	base, err := language.NewContextFromConfig(cfg)
package language
