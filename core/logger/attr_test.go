package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/polyroute/core/logger"
)

func TestError(t *testing.T) {
	t.Run("nil error yields empty attr", func(t *testing.T) {
		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	})

	t.Run("non-nil error", func(t *testing.T) {
		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})
}

func TestEmptyValueHelpers(t *testing.T) {
	empty := slog.Attr{}
	assert.True(t, logger.Route("").Equal(empty))
	assert.True(t, logger.Language("").Equal(empty))
	assert.True(t, logger.Languages(nil).Equal(empty))
	assert.True(t, logger.Candidates(nil).Equal(empty))
	assert.True(t, logger.RequestID("").Equal(empty))
	assert.True(t, logger.Key("k", nil).Equal(empty))
}

func TestStringHelpers(t *testing.T) {
	assert.True(t, logger.Component("router").Equal(slog.String("component", "router")))
	assert.True(t, logger.Path("/over-ons").Equal(slog.String("path", "/over-ons")))
	assert.True(t, logger.Route("terms").Equal(slog.String("route", "terms")))
	assert.True(t, logger.Language("nl").Equal(slog.String("language", "nl")))
	assert.True(t, logger.Languages([]string{"en", "nl"}).Equal(slog.String("languages", "en,nl")))
	assert.True(t, logger.Count("routes", 3).Equal(slog.Int("routes", 3)))
	assert.True(t, logger.Duration(time.Second).Equal(slog.Duration("duration", time.Second)))
}

func TestElapsed(t *testing.T) {
	attr := logger.Elapsed(time.Now().Add(-time.Millisecond))
	assert.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), time.Millisecond)
}
