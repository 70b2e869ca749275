package slug

type options struct {
	maxLength    int
	separator    string
	lowercase    bool
	suffixLength int
	replacements map[string]string
	strip        string
}

func defaultOptions() options {
	return options{
		separator: "-",
		lowercase: true,
	}
}

// Option configures slug generation.
type Option func(*options)

// MaxLength limits the slug to at most n runes. Truncation is rune-aware and
// never leaves a dangling separator at the end. Zero or negative values
// disable the limit.
func MaxLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLength = n
		}
	}
}

// Separator sets the string inserted between words. Default is "-". An
// empty separator is ignored.
func Separator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// Lowercase controls case folding. Enabled by default; pass false to keep
// the original case of letters.
func Lowercase(enabled bool) Option {
	return func(o *options) {
		o.lowercase = enabled
	}
}

// WithSuffix appends a random suffix of n characters, separated from the
// slug body by the separator. Useful for collision avoidance. When combined
// with MaxLength, the body is truncated so the total stays within the limit.
func WithSuffix(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.suffixLength = n
		}
	}
}

// CustomReplace substitutes tokens before any other processing, e.g.
// {"&": "and", "C++": "cpp"}.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		o.replacements = replacements
	}
}

// StripChars removes the given characters entirely instead of treating them
// as word boundaries.
func StripChars(chars string) Option {
	return func(o *options) {
		o.strip = chars
	}
}
