package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyroute/core/language"
	"github.com/dmitrymomot/polyroute/middleware"
)

var (
	en = language.MustNew("en")
	nl = language.MustNew("nl")
	de = language.MustNew("de")
)

func baseContext(t *testing.T) language.Context {
	t.Helper()
	return language.MustNewContext(en, en, nl)
}

// captureLanguage returns a handler that records the detected context.
func captureLanguage(got *language.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctx, ok := middleware.LanguageFromContext(r.Context()); ok {
			*got = ctx
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestLanguage(t *testing.T) {
	t.Run("defaults to base current language", func(t *testing.T) {
		var got language.Context
		h := middleware.Language(baseContext(t))(captureLanguage(&got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, en, got.Current())
	})

	t.Run("detects from accept-language header", func(t *testing.T) {
		var got language.Context
		h := middleware.Language(baseContext(t))(captureLanguage(&got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "nl,en;q=0.5")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, nl, got.Current())
	})

	t.Run("query param beats header", func(t *testing.T) {
		var got language.Context
		h := middleware.Language(baseContext(t))(captureLanguage(&got))

		req := httptest.NewRequest(http.MethodGet, "/?lang=nl", nil)
		req.Header.Set("Accept-Language", "en")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, nl, got.Current())
	})

	t.Run("cookie beats header", func(t *testing.T) {
		var got language.Context
		h := middleware.Language(baseContext(t))(captureLanguage(&got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "nl"})
		req.Header.Set("Accept-Language", "en")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, nl, got.Current())
	})

	t.Run("unsupported values are skipped", func(t *testing.T) {
		var got language.Context
		h := middleware.Language(baseContext(t))(captureLanguage(&got))

		// German is valid but not among the available languages.
		req := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, en, got.Current())
		assert.False(t, got.Contains(de))
	})

	t.Run("available set is preserved", func(t *testing.T) {
		var got language.Context
		h := middleware.Language(baseContext(t))(captureLanguage(&got))

		req := httptest.NewRequest(http.MethodGet, "/?lang=nl", nil)
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, []language.Language{en, nl}, got.Available())
	})

	t.Run("persists cookie when configured", func(t *testing.T) {
		var got language.Context
		h := middleware.LanguageWithConfig(middleware.LanguageConfig{
			Base:          baseContext(t),
			PersistCookie: true,
		})(captureLanguage(&got))

		req := httptest.NewRequest(http.MethodGet, "/?lang=nl", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "lang", cookies[0].Name)
		assert.Equal(t, "nl", cookies[0].Value)
	})

	t.Run("custom query param", func(t *testing.T) {
		var got language.Context
		h := middleware.LanguageWithConfig(middleware.LanguageConfig{
			Base:       baseContext(t),
			QueryParam: "locale",
		})(captureLanguage(&got))

		req := httptest.NewRequest(http.MethodGet, "/?locale=nl", nil)
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, nl, got.Current())
	})
}

func TestLanguageFromContext(t *testing.T) {
	t.Run("missing middleware", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := middleware.LanguageFromContext(req.Context())
		assert.False(t, ok)
	})
}
