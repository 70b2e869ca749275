package segment

import (
	"github.com/dmitrymomot/polyroute/core/language"
	"github.com/dmitrymomot/polyroute/core/translation"
)

// Print appends the current language's translation to the output cursor,
// verbatim. Printing is single-language: no fallback is attempted when the
// current language is missing from the map, since silently emitting another
// language would corrupt generated URLs. In that case Print writes nothing
// and returns a *MissingTranslationError.
func Print(out *Output, m translation.Map, ctx language.Context) error {
	t, ok := m.Get(ctx.Current())
	if !ok {
		return &MissingTranslationError{
			Language:  ctx.Current(),
			Available: m.Languages(),
		}
	}
	out.Append(t)
	return nil
}
