// Package slug generates URL-safe slugs from arbitrary strings with Unicode
// normalization.
//
// The package converts text to web-friendly identifiers by folding
// diacritics, replacing special characters with separators, and offering
// configurable length limits and collision-resistant suffixes.
//
// # Usage
//
// Basic slug generation:
//
//	slug.Make("Hello, World!")
//	// Output: "hello-world"
//
//	slug.Make("Café & Restaurant")
//	// Output: "cafe-restaurant"
//
//	slug.Make("Straße in München")
//	// Output: "strasse-in-munchen"
//
// With options:
//
//	slug.Make("Long article title here",
//		slug.MaxLength(20),
//		slug.WithSuffix(6),
//	)
//	// Output: "long-article-a7b2x9"
//
// Custom separator and case:
//
//	slug.Make("Product Name",
//		slug.Separator("_"),
//		slug.Lowercase(false),
//	)
//	// Output: "Product_Name"
//
// Custom replacements handle domain-specific tokens:
//
//	slug.Make("C++ & Go @ GitHub", slug.CustomReplace(map[string]string{
//		"&":   "and",
//		"@":   "at",
//		"C++": "cpp",
//	}))
//	// Output: "cpp-and-go-at-github"
//
// # Guarantees
//
// Make never returns an error and always produces valid output: empty input
// yields an empty string, all-special-character input yields an empty string
// or a suffix-only slug, and randomness failures fall back to a
// deterministic suffix. With default options Make is idempotent: feeding a
// slug back in returns it unchanged.
//
// Length limits count runes, not bytes, and truncation never leaves a
// dangling separator. Scripts without an ASCII mapping (Cyrillic, CJK) are
// treated as word boundaries rather than transliterated.
package slug
