package logger

import (
	"log/slog"
	"strings"
	"time"
)

// Attribute helpers return an empty Attr for empty input, so call sites
// never need nil checks: log.Info("msg", logger.Error(err)) is safe even
// when err is nil.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path creates an attribute for URL paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Route creates an attribute for named routes.
func Route(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("route", name)
}

// Language creates an attribute for a language tag.
func Language(tag string) slog.Attr {
	if tag == "" {
		return slog.Attr{}
	}
	return slog.String("language", tag)
}

// Languages creates an attribute for an ordered list of language tags.
func Languages(tags []string) slog.Attr {
	if len(tags) == 0 {
		return slog.Attr{}
	}
	return slog.String("languages", strings.Join(tags, ","))
}

// Candidates creates an attribute for the translations tried during a match.
func Candidates(values []string) slog.Attr {
	if len(values) == 0 {
		return slog.Attr{}
	}
	return slog.Any("candidates", values)
}

// RequestID creates an attribute for HTTP request IDs.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Key creates a generic key-value attribute.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
