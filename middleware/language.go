package middleware

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/polyroute/core/language"
)

// languageContextKey is used as a key for storing the language context in
// the request context.
type languageContextKey struct{}

// LanguageConfig configures the language detection middleware.
type LanguageConfig struct {
	// Base supplies the available languages and the default current
	// language (required).
	Base language.Context
	// QueryParam overrides detection via URL query, e.g. "?lang=nl".
	// Default: "lang". Set to "-" to disable query detection.
	QueryParam string
	// CookieName names the cookie consulted after the query parameter.
	// Default: "lang".
	CookieName string
	// PersistCookie writes the detected language back to the cookie so the
	// choice sticks across requests.
	PersistCookie bool
	// CookieMaxAge is the lifetime of the persisted cookie in seconds.
	// Default: 180 days.
	CookieMaxAge int
}

// Language creates a language detection middleware with default
// configuration. Detection order: query parameter, cookie, Accept-Language
// header, base default. The resulting per-request language.Context is stored
// in the request context for handlers and downstream middleware.
func Language(base language.Context) func(http.Handler) http.Handler {
	return LanguageWithConfig(LanguageConfig{Base: base})
}

// LanguageWithConfig creates a language detection middleware with custom
// configuration.
func LanguageWithConfig(cfg LanguageConfig) func(http.Handler) http.Handler {
	if cfg.QueryParam == "" {
		cfg.QueryParam = "lang"
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "lang"
	}
	if cfg.CookieMaxAge <= 0 {
		cfg.CookieMaxAge = 180 * 24 * 60 * 60
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			detected := detectLanguage(r, cfg)

			reqCtx, err := cfg.Base.Switch(detected)
			if err != nil {
				reqCtx = cfg.Base
			}

			if cfg.PersistCookie {
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    reqCtx.Current().String(),
					Path:     "/",
					MaxAge:   cfg.CookieMaxAge,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), languageContextKey{}, reqCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// detectLanguage resolves the request language: query parameter first, then
// cookie, then Accept-Language, then the base default. Unsupported values
// are skipped rather than honored.
func detectLanguage(r *http.Request, cfg LanguageConfig) language.Language {
	if cfg.QueryParam != "-" {
		if tag := r.URL.Query().Get(cfg.QueryParam); tag != "" {
			if l, err := language.New(tag); err == nil && cfg.Base.Contains(l) {
				return l
			}
		}
	}

	if cookie, err := r.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
		if l, err := language.New(cookie.Value); err == nil && cfg.Base.Contains(l) {
			return l
		}
	}

	if header := r.Header.Get("Accept-Language"); header != "" {
		if l := language.ParseAcceptLanguage(header, cfg.Base.Available()); !l.IsZero() {
			return l
		}
	}

	return cfg.Base.Current()
}

// LanguageFromContext retrieves the language context stored by the Language
// middleware. The second return value is false when the middleware did not
// run for this request.
func LanguageFromContext(ctx context.Context) (language.Context, bool) {
	c, ok := ctx.Value(languageContextKey{}).(language.Context)
	return c, ok
}
