// Package logger provides slog attribute helpers used across the module.
//
// Helpers accept zero values gracefully and return an empty Attr, so they
// can be passed unconditionally:
//
//	log.Warn("path did not resolve",
//		logger.Component("router"),
//		logger.Path(path),
//		logger.Language(ctx.Current().String()),
//		logger.Error(err),
//	)
package logger
