package segment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/polyroute/core/language"
)

var (
	// ErrNoTranslationMatched is wrapped by every *UnmatchedError.
	ErrNoTranslationMatched = errors.New("no translation matched")
	// ErrMissingTranslation is wrapped by every *MissingTranslationError.
	ErrMissingTranslation = errors.New("missing translation")
)

// UnmatchedError reports that no candidate language's translation prefixes
// the remaining input. It is data, not just a signal: callers can surface
// the candidate list as a routing diagnostic. Routers typically treat it as
// "try the next alternative" rather than a fatal error.
type UnmatchedError struct {
	// Input is the remaining input at the failed position.
	Input string
	// Candidates are all translations that were available, deduplicated and
	// sorted lexicographically.
	Candidates []string
	// Checked lists the languages probed, in probe order (current first).
	Checked []language.Language
}

func (e *UnmatchedError) Error() string {
	checked := make([]string, len(e.Checked))
	for i, l := range e.Checked {
		checked[i] = l.String()
	}
	return fmt.Sprintf("no translation matched input %q: candidates [%s], checked [%s]",
		e.Input, strings.Join(e.Candidates, ", "), strings.Join(checked, ", "))
}

// Unwrap makes errors.Is(err, ErrNoTranslationMatched) work.
func (e *UnmatchedError) Unwrap() error {
	return ErrNoTranslationMatched
}

// MissingTranslationError reports a print attempt for a language the map
// does not cover. This indicates a construction bug on the caller's side:
// the map was built without covering all declared languages.
type MissingTranslationError struct {
	// Language is the current language the print was attempted for.
	Language language.Language
	// Available lists the languages the map does cover, sorted by tag.
	Available []language.Language
}

func (e *MissingTranslationError) Error() string {
	available := make([]string, len(e.Available))
	for i, l := range e.Available {
		available[i] = l.String()
	}
	return fmt.Sprintf("missing translation for language %q, map covers [%s]",
		e.Language, strings.Join(available, ", "))
}

// Unwrap makes errors.Is(err, ErrMissingTranslation) work.
func (e *MissingTranslationError) Unwrap() error {
	return ErrMissingTranslation
}
