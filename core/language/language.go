package language

import (
	"fmt"

	xlanguage "golang.org/x/text/language"
)

// Language identifies a supported language by its canonical BCP 47 tag.
// The zero value is invalid; use New or MustNew to construct one.
// Language is comparable and safe to use as a map key.
type Language struct {
	tag string
}

// New parses and canonicalizes a BCP 47 language tag.
// Canonicalization means "EN-us" and "en-US" produce the same Language.
func New(tag string) (Language, error) {
	if tag == "" {
		return Language{}, ErrEmptyTag
	}
	parsed, err := xlanguage.Parse(tag)
	if err != nil {
		return Language{}, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}
	return Language{tag: parsed.String()}, nil
}

// MustNew is like New but panics on invalid tags.
// Intended for package-level declarations of known-good tags.
func MustNew(tag string) Language {
	l, err := New(tag)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the canonical tag, or an empty string for the zero value.
func (l Language) String() string {
	return l.tag
}

// IsZero reports whether the language is the invalid zero value.
func (l Language) IsZero() bool {
	return l.tag == ""
}
