package polyroute

import (
	"github.com/dmitrymomot/polyroute/core/language"
	"github.com/dmitrymomot/polyroute/core/router"
	"github.com/dmitrymomot/polyroute/core/translation"
)

// Aliases for the types most applications touch, so simple setups only need
// the root import.
type (
	Language = language.Language
	Context  = language.Context
	Map      = translation.Map
	Table    = router.Table
	Segment  = router.Segment
)

// NewLanguage parses and canonicalizes a BCP 47 language tag.
func NewLanguage(tag string) (Language, error) {
	return language.New(tag)
}

// MustNewLanguage is like NewLanguage but panics on invalid tags.
func MustNewLanguage(tag string) Language {
	return language.MustNew(tag)
}

// NewTable creates an empty localized route table.
func NewTable(opts ...router.Option) *Table {
	return router.New(opts...)
}
