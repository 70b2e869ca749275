package segment

import (
	"slices"
	"sync"

	"github.com/dmitrymomot/polyroute/core/language"
	"github.com/dmitrymomot/polyroute/core/translation"
)

// candidateCache memoizes the sorted candidate list per (map content,
// language set) pair. Both inputs are immutable, so entries never go stale.
// The cache is an optimization only: removing it changes no observable
// result, and computation happens at most once per key.
var candidateCache sync.Map // string -> []string

// Candidates returns every translation the given context allows, collected
// across the available languages, deduplicated and sorted lexicographically.
// The result is stable across runs and suitable for error messages. The
// returned slice is a fresh copy the caller may keep or modify.
func Candidates(m translation.Map, ctx language.Context) []string {
	key := m.Fingerprint() + "|" + ctx.Fingerprint()
	if v, ok := candidateCache.Load(key); ok {
		return slices.Clone(v.([]string))
	}

	seen := make(map[string]bool)
	var candidates []string
	for _, l := range ctx.Candidates() {
		t, ok := m.Get(l)
		if !ok || seen[t] {
			continue
		}
		seen[t] = true
		candidates = append(candidates, t)
	}
	slices.Sort(candidates)

	actual, _ := candidateCache.LoadOrStore(key, candidates)
	return slices.Clone(actual.([]string))
}

// ResetCandidateCache drops all memoized candidate lists. Intended for tests
// and long-lived processes that rebuild route tables.
func ResetCandidateCache() {
	candidateCache.Clear()
}
