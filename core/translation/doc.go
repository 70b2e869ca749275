// Package translation provides the per-language string table matched against
// and printed into URL path segments.
//
// A Map holds exactly one translation per language for a single routable
// concept. Maps are validated at construction and immutable afterward, so
// one Map can back concurrent match and print calls without coordination:
//
//	var (
//		en = language.MustNew("en")
//		nl = language.MustNew("nl")
//	)
//
//	home := translation.MustNew(map[language.Language]string{
//		en: "home",
//		nl: "thuis",
//	})
//
// Construction rejects empty maps and empty-string translations: an empty
// translation is a prefix of every input and would silently defeat language
// fallback during matching.
//
// Raw translations often contain spaces and punctuation. Before a Map is
// used for path segments, derive the URL-safe view explicitly:
//
//	terms := translation.MustNew(map[language.Language]string{
//		en: "general terms and conditions",
//		nl: "algemene voorwaarden",
//	})
//
//	segment, err := terms.Slugify()
//	// en: general-terms-and-conditions, nl: algemene-voorwaarden
//
// Slugify returns a derived Map and never mutates the receiver. Matching and
// printing never transform text implicitly; what goes into the Map is what
// is compared and emitted.
//
// For diagnostics, Map.String renders all entries on one line and
// DescribeSlugs shows each raw translation next to its slugified form when
// the two differ.
package translation
