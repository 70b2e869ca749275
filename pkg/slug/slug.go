package slug

import (
	"crypto/rand"
	"hash/fnv"
	"slices"
	"strconv"
	"strings"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Make converts an arbitrary string into a URL-safe slug. With default
// options the result is lowercase ASCII letters, digits, and single hyphens,
// with no leading or trailing hyphen. Make is idempotent for default
// options: feeding a slug back in returns it unchanged.
func Make(s string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s = applyReplacements(s, o.replacements)
	s = stripChars(s, o.strip)
	s = foldDiacritics(s)
	if o.lowercase {
		s = strings.ToLower(s)
	}

	out := strings.Join(splitWords(s), o.separator)

	if o.suffixLength > 0 {
		suffix := randomSuffix(o.suffixLength, s)
		if o.maxLength > 0 {
			budget := o.maxLength - o.suffixLength - len([]rune(o.separator))
			out = truncate(out, budget, o.separator)
		}
		if out == "" {
			return suffix
		}
		return out + o.separator + suffix
	}

	if o.maxLength > 0 {
		out = truncate(out, o.maxLength, o.separator)
	}
	return out
}

// applyReplacements substitutes custom tokens before any other processing,
// so multi-character tokens like "C++" survive character folding. Keys are
// applied longest-first for deterministic output when keys overlap.
func applyReplacements(s string, replacements map[string]string) string {
	if len(replacements) == 0 {
		return s
	}

	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		if k != "" {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if d := len(b) - len(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	for _, k := range keys {
		s = strings.ReplaceAll(s, k, replacements[k])
	}
	return s
}

func stripChars(s, chars string) string {
	if chars == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// splitWords extracts runs of ASCII alphanumerics; everything else acts as a
// word boundary. Non-ASCII letters that survived diacritic folding (e.g.
// CJK, Cyrillic) are treated as boundaries too.
func splitWords(s string) []string {
	var words []string
	var cur strings.Builder
	for _, r := range s {
		if isAlnum(r) {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	return words
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// truncate cuts s to at most max runes and drops any separator left dangling
// at the cut point.
func truncate(s string, max int, separator string) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := string(runes[:max])
	for strings.HasSuffix(cut, separator) {
		cut = strings.TrimSuffix(cut, separator)
	}
	return cut
}

// randomSuffix generates n characters from the suffix alphabet. If the
// system randomness source fails, it falls back to a deterministic suffix
// derived from the input so Make never returns an error.
func randomSuffix(n int, seed string) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return deterministicSuffix(n, seed)
	}
	for i, b := range buf {
		buf[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return string(buf)
}

func deterministicSuffix(n int, seed string) string {
	h := fnv.New64a()
	h.Write([]byte(seed))
	out := strconv.FormatUint(h.Sum64(), 36)
	for len(out) < n {
		h.Write([]byte{0})
		out += strconv.FormatUint(h.Sum64(), 36)
	}
	return out[:n]
}
