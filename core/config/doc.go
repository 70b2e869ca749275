// Package config provides type-safe environment variable loading with
// per-type caching.
//
// A .env file is loaded automatically on first use; parsing uses the
// caarlos0/env library and its struct tags:
//
//	type AppConfig struct {
//		DefaultLanguage string   `env:"LANGUAGE_DEFAULT" envDefault:"en"`
//		Supported       []string `env:"LANGUAGES_SUPPORTED" envSeparator:","`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded once per application lifetime; later
// Load calls for the same type return the cached value. Different types are
// cached independently.
package config
