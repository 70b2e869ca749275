package segment_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyroute/core/language"
	"github.com/dmitrymomot/polyroute/core/segment"
	"github.com/dmitrymomot/polyroute/core/translation"
)

var (
	en = language.MustNew("en")
	nl = language.MustNew("nl")
	de = language.MustNew("de")
)

func homeMap(t *testing.T) translation.Map {
	t.Helper()
	m, err := translation.New(map[language.Language]string{
		en: "home",
		nl: "thuis",
	})
	require.NoError(t, err)
	return m
}

func TestMatch(t *testing.T) {
	t.Run("matches current language", func(t *testing.T) {
		in := segment.NewInput("home")
		n, err := segment.Match(in, homeMap(t), language.MustNewContext(en, en, nl))
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.True(t, in.Empty())
	})

	t.Run("current language is probed first", func(t *testing.T) {
		// Both translations prefix the input, but the current language's
		// shorter one must win, leaving the tail unconsumed.
		m, err := translation.New(map[language.Language]string{
			en: "home",
			nl: "homecoming",
		})
		require.NoError(t, err)

		in := segment.NewInput("homecoming")
		n, err := segment.Match(in, m, language.MustNewContext(en, en, nl))
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Equal(t, "coming", in.Remaining())
	})

	t.Run("falls back across available languages", func(t *testing.T) {
		in := segment.NewInput("thuis")
		n, err := segment.Match(in, homeMap(t), language.MustNewContext(en, en, nl))
		require.NoError(t, err)
		assert.Equal(t, len("thuis"), n)
		assert.True(t, in.Empty())
	})

	t.Run("prefix-only consumption", func(t *testing.T) {
		in := segment.NewInput("homecoming")
		n, err := segment.Match(in, homeMap(t), language.MustNewContext(en, en, nl))
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Equal(t, "coming", in.Remaining())
	})

	t.Run("identical translations match from either current language", func(t *testing.T) {
		m, err := translation.New(map[language.Language]string{
			en: "contact",
			nl: "contact",
		})
		require.NoError(t, err)

		for _, current := range []language.Language{en, nl} {
			in := segment.NewInput("contact")
			n, err := segment.Match(in, m, language.MustNewContext(current, en, nl))
			require.NoError(t, err)
			assert.Equal(t, len("contact"), n)
			assert.True(t, in.Empty())
		}
	})

	t.Run("empty input never matches", func(t *testing.T) {
		in := segment.NewInput("")
		_, err := segment.Match(in, homeMap(t), language.MustNewContext(en, en, nl))
		assert.ErrorIs(t, err, segment.ErrNoTranslationMatched)
	})

	t.Run("skips languages missing from the map", func(t *testing.T) {
		in := segment.NewInput("thuis")
		n, err := segment.Match(in, homeMap(t), language.MustNewContext(de, de, en, nl))
		require.NoError(t, err)
		assert.Equal(t, len("thuis"), n)
	})

	t.Run("failure leaves the cursor untouched", func(t *testing.T) {
		in := segment.NewInput("unknown-path")
		_, err := segment.Match(in, homeMap(t), language.MustNewContext(en, en, nl))
		require.Error(t, err)
		assert.Equal(t, 0, in.Pos())
		assert.Equal(t, "unknown-path", in.Remaining())
	})

	t.Run("failure payload is deterministic", func(t *testing.T) {
		in := segment.NewInput("unknown-path")
		_, err := segment.Match(in, homeMap(t), language.MustNewContext(nl, en, nl))

		var unmatched *segment.UnmatchedError
		require.ErrorAs(t, err, &unmatched)
		assert.Equal(t, "unknown-path", unmatched.Input)
		assert.Equal(t, []string{"home", "thuis"}, unmatched.Candidates)
		assert.Equal(t, []language.Language{nl, en}, unmatched.Checked)
	})
}

func TestPrint(t *testing.T) {
	t.Run("prints current language", func(t *testing.T) {
		var out segment.Output
		err := segment.Print(&out, homeMap(t), language.MustNewContext(nl, en, nl))
		require.NoError(t, err)
		assert.Equal(t, "thuis", out.String())
	})

	t.Run("appends to existing output", func(t *testing.T) {
		var out segment.Output
		out.Append("/")
		require.NoError(t, segment.Print(&out, homeMap(t), language.MustNewContext(en, en)))
		assert.Equal(t, "/home", out.String())
	})

	t.Run("no fallback for missing translation", func(t *testing.T) {
		var out segment.Output
		err := segment.Print(&out, homeMap(t), language.MustNewContext(de, de, en))
		assert.ErrorIs(t, err, segment.ErrMissingTranslation)
		assert.Zero(t, out.Len())

		var missing *segment.MissingTranslationError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, de, missing.Language)
		assert.Equal(t, []language.Language{en, nl}, missing.Available)
	})
}

func TestRoundTrip(t *testing.T) {
	m := homeMap(t)
	for _, l := range m.Languages() {
		ctx := language.MustNewContext(l, l)

		var out segment.Output
		require.NoError(t, segment.Print(&out, m, ctx))

		in := segment.NewInput(out.String())
		n, err := segment.Match(in, m, ctx)
		require.NoError(t, err)
		assert.Equal(t, len(out.String()), n)
		assert.True(t, in.Empty())
	}
}

func TestCandidates(t *testing.T) {
	t.Run("deduplicated and sorted", func(t *testing.T) {
		m, err := translation.New(map[language.Language]string{
			en: "thuis",
			nl: "home",
			de: "home",
		})
		require.NoError(t, err)

		got := segment.Candidates(m, language.MustNewContext(en, en, nl, de))
		assert.Equal(t, []string{"home", "thuis"}, got)
	})

	t.Run("cache is transparent", func(t *testing.T) {
		segment.ResetCandidateCache()
		m := homeMap(t)
		ctx := language.MustNewContext(en, en, nl)

		first := segment.Candidates(m, ctx)
		second := segment.Candidates(m, ctx)
		assert.Equal(t, first, second)

		// Mutating a returned slice must not poison later calls.
		first[0] = "mutated"
		assert.Equal(t, second, segment.Candidates(m, ctx))

		segment.ResetCandidateCache()
		assert.Equal(t, second, segment.Candidates(m, ctx))
	})
}

func TestInput(t *testing.T) {
	t.Run("consume moves forward", func(t *testing.T) {
		in := segment.NewInput("home/coming")
		assert.True(t, in.ConsumePrefix("home"))
		assert.Equal(t, 4, in.Pos())
		assert.Equal(t, "/coming", in.Remaining())
	})

	t.Run("failed consume does not move", func(t *testing.T) {
		in := segment.NewInput("home")
		assert.False(t, in.ConsumePrefix("thuis"))
		assert.Equal(t, 0, in.Pos())
	})

	t.Run("empty prefix never consumes", func(t *testing.T) {
		in := segment.NewInput("home")
		assert.False(t, in.ConsumePrefix(""))
	})
}

func TestErrorMessages(t *testing.T) {
	t.Run("unmatched error formats diagnostics", func(t *testing.T) {
		err := error(&segment.UnmatchedError{
			Input:      "unknown",
			Candidates: []string{"home", "thuis"},
			Checked:    []language.Language{nl, en},
		})
		assert.Equal(t,
			`no translation matched input "unknown": candidates [home, thuis], checked [nl, en]`,
			err.Error())
		assert.True(t, errors.Is(err, segment.ErrNoTranslationMatched))
	})

	t.Run("missing translation error formats diagnostics", func(t *testing.T) {
		err := error(&segment.MissingTranslationError{
			Language:  de,
			Available: []language.Language{en, nl},
		})
		assert.Equal(t,
			`missing translation for language "de", map covers [en, nl]`,
			err.Error())
		assert.True(t, errors.Is(err, segment.ErrMissingTranslation))
	})
}
