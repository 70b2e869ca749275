package segment

import (
	"github.com/dmitrymomot/polyroute/core/language"
	"github.com/dmitrymomot/polyroute/core/translation"
)

// Match consumes one translated token from the input cursor. The current
// language's translation is probed first, then the remaining available
// languages in their declared order; the first translation that prefixes the
// remaining input wins and exactly that many bytes are consumed. Matching is
// prefix-based: anchoring to a whole path segment is the caller's job.
//
// On success Match returns the number of bytes consumed. When no candidate
// matches it returns an *UnmatchedError describing every translation that
// was tried, and the cursor is left exactly where it was.
func Match(in *Input, m translation.Map, ctx language.Context) (int, error) {
	checked := ctx.Candidates()
	for _, l := range checked {
		t, ok := m.Get(l)
		if !ok {
			continue
		}
		if in.ConsumePrefix(t) {
			return len(t), nil
		}
	}

	return 0, &UnmatchedError{
		Input:      in.Remaining(),
		Candidates: Candidates(m, ctx),
		Checked:    checked,
	}
}
