package router

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/polyroute/core/language"
	"github.com/dmitrymomot/polyroute/core/segment"
)

// Path builds the localized URL path for a named route in the context's
// current language. Parameter segments take their values from params; static
// segments are printed through the segment engine, so a map that does not
// cover the current language yields a *segment.MissingTranslationError
// rather than a URL in the wrong language.
func (t *Table) Path(name string, ctx language.Context, params map[string]string) (string, error) {
	r, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}

	var b strings.Builder
	for i, seg := range r.segments {
		b.WriteByte('/')

		if seg.IsParam() {
			v, ok := params[seg.param]
			if !ok || v == "" {
				return "", fmt.Errorf("%w: %q for route %q", ErrMissingParam, seg.param, name)
			}
			b.WriteString(v)
			continue
		}

		var out segment.Output
		if err := segment.Print(&out, seg.translations, ctx); err != nil {
			return "", fmt.Errorf("route %q, segment %d: %w", name, i, err)
		}
		b.WriteString(out.String())
	}

	return b.String(), nil
}
