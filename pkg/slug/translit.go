package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// expansions covers characters that do not decompose into a base letter plus
// combining marks, so NFD normalization alone cannot fold them.
var expansions = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"ł", "l", "Ł", "L",
)

// foldTransformer decomposes accented characters and strips the combining
// marks: "é" → "e", "ñ" → "n".
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// foldDiacritics converts accented Latin characters to their ASCII base
// forms. Characters with no ASCII equivalent pass through unchanged and are
// handled as word boundaries later in the pipeline.
func foldDiacritics(s string) string {
	s = expansions.Replace(s)
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}
