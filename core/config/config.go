package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNotStructPointer is returned when cfg is not a non-nil pointer to a struct.
	ErrNotStructPointer = errors.New("config target must be a non-nil struct pointer")

	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> struct value
)

// Load populates cfg from environment variables using `env` struct tags.
// A .env file, if present in the working directory, is loaded into the
// process environment once per application lifetime. Each configuration type
// is parsed once and cached; later calls for the same type receive the
// cached value.
func Load(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrNotStructPointer, cfg)
	}

	dotenvOnce.Do(func() {
		// Missing .env is not an error; the environment may be set directly.
		_ = godotenv.Load()
	})

	t := v.Elem().Type()
	if cached, ok := cache.Load(t); ok {
		v.Elem().Set(cached.(reflect.Value))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", t, err)
	}

	// Cache a detached copy so later mutations of cfg don't leak into it.
	snapshot := reflect.New(t).Elem()
	snapshot.Set(v.Elem())
	cached, _ := cache.LoadOrStore(t, snapshot)
	v.Elem().Set(cached.(reflect.Value))
	return nil
}

// MustLoad is like Load but panics on failure. Useful during application
// startup where a missing required variable should abort immediately.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
