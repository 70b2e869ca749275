package translation

import "errors"

var (
	ErrEmptyMap         = errors.New("translation map cannot be empty")
	ErrInvalidLanguage  = errors.New("translation map key is not a valid language")
	ErrEmptyTranslation = errors.New("translation cannot be empty")
	ErrEmptySlug        = errors.New("translation slugs to an empty string")
)
