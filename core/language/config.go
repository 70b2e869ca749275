package language

import "fmt"

// Config declares the language set of an application through environment
// variables. Load it with core/config and turn it into a Context with
// NewContextFromConfig.
type Config struct {
	// Default is the tag of the language used when detection yields nothing.
	Default string `env:"LANGUAGE_DEFAULT" envDefault:"en"`
	// Supported lists the tags of all languages the application serves.
	// The default language is always included.
	Supported []string `env:"LANGUAGES_SUPPORTED" envSeparator:"," envDefault:"en"`
}

// NewContextFromConfig validates the configured tags and builds the base
// Context for the application: current = Default, available = Supported in
// their configured order.
func NewContextFromConfig(cfg Config) (Context, error) {
	current, err := New(cfg.Default)
	if err != nil {
		return Context{}, fmt.Errorf("default language: %w", err)
	}

	available := make([]Language, 0, len(cfg.Supported))
	for _, tag := range cfg.Supported {
		l, err := New(tag)
		if err != nil {
			return Context{}, fmt.Errorf("supported language: %w", err)
		}
		available = append(available, l)
	}

	return NewContext(current, available...)
}
