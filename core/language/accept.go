package language

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents memory exhaustion from oversized
// Accept-Language headers. RFC 7231 sets no limit; 4KB is generous for
// legitimate clients.
const maxAcceptLanguageLength = 4096

// acceptTag is a parsed Accept-Language entry with its quality value.
type acceptTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage picks the best supported language for an
// Accept-Language header. Quality values are honored; when qualities tie,
// the server-side order of available wins (RFC 7231 section 5.3.1). Partial
// matches are supported ("en" matches "en-US"). With no match, or an empty
// header, the first available language is returned. With an empty available
// set the zero Language is returned.
func ParseAcceptLanguage(header string, available []Language) Language {
	if len(available) == 0 {
		return Language{}
	}
	if header == "" {
		return available[0]
	}

	tags := parseAcceptTags(header)

	var bestMatch Language
	var bestQuality float64 = -1
	var bestIsExact bool

	for _, avail := range available {
		availNorm := normalizeTag(avail.String())

		for _, tag := range tags {
			if tag.tag == availNorm {
				if tag.quality > bestQuality || (tag.quality == bestQuality && !bestIsExact) {
					bestMatch = avail
					bestQuality = tag.quality
					bestIsExact = true
				}
				break
			}

			if baseMatches(tag.tag, availNorm) {
				// A partial match only displaces an exact one when the
				// client marked it with a strictly higher quality.
				if bestMatch.IsZero() || tag.quality > bestQuality {
					bestMatch = avail
					bestQuality = tag.quality
					bestIsExact = false
				}
				break
			}
		}
	}

	if !bestMatch.IsZero() {
		return bestMatch
	}
	return available[0]
}

// parseAcceptTags splits an Accept-Language header into normalized tags
// sorted by descending quality.
func parseAcceptTags(header string) []acceptTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []acceptTag

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart := part

		if idx := strings.Index(part, ";"); idx != -1 {
			langPart = strings.TrimSpace(part[:idx])
			qPart := strings.TrimSpace(part[idx+1:])

			if after, ok := strings.CutPrefix(qPart, "q="); ok {
				if q, err := strconv.ParseFloat(after, 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart != "" && langPart != "*" {
			tags = append(tags, acceptTag{
				tag:     normalizeTag(langPart),
				quality: quality,
			})
		}
	}

	slices.SortStableFunc(tags, func(a, b acceptTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// baseMatches reports whether two normalized tags share a primary subtag,
// so "en" matches "en-us" and vice versa.
func baseMatches(requested, available string) bool {
	reqBase, _, _ := strings.Cut(requested, "-")
	availBase, _, _ := strings.Cut(available, "-")
	return reqBase == availBase
}
