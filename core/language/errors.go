package language

import "errors"

var (
	// Tag errors
	ErrEmptyTag   = errors.New("language tag cannot be empty")
	ErrInvalidTag = errors.New("invalid language tag")

	// Context errors
	ErrZeroLanguage = errors.New("language is the zero value")
	ErrNoLanguages  = errors.New("at least one language is required")
)
