// Package segment matches and prints multilingual URL path tokens.
//
// The engine is two pure functions over cursors. Match consumes one
// translated token from an input cursor, probing the current language first
// and falling back across the remaining available languages in order:
//
//	ctx := language.MustNewContext(nl, en, nl)
//	home := translation.MustNew(map[language.Language]string{
//		en: "home",
//		nl: "thuis",
//	})
//
//	in := segment.NewInput("home")
//	n, err := segment.Match(in, home, ctx)
//	// n == 4 via the English fallback, in.Empty() == true
//
// Print emits the current language's translation into an output cursor, with
// no fallback:
//
//	var out segment.Output
//	if err := segment.Print(&out, home, ctx); err != nil {
//		// *MissingTranslationError: map does not cover ctx.Current()
//	}
//	out.String() // "thuis"
//
// Matching is prefix-based by design: input "homecoming" against "home"
// consumes four bytes and leaves "coming". Hosts that match whole path
// segments anchor the boundary themselves (see core/router). A failed match
// never consumes input, and the returned *UnmatchedError carries the
// remaining input, the deduplicated sorted candidate translations, and the
// probe order, ready to be formatted into a diagnostic.
//
// Both functions are pure apart from cursor movement, so a translation map
// and context may be shared across goroutines as long as each call owns its
// cursors.
package segment
