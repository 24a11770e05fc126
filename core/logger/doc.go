// Package logger provides structured logging utilities built on Go's standard slog package:
// a small logger factory and a set of nil-safe attribute helpers.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/lstrings/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("lstrings"))
//
//	// Production: JSON format, info level
//	log := logger.New(
//		logger.WithProduction("lstrings"),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for empty input, which slog drops, so they
// can be passed unconditionally:
//
//	log.Info("Catalog loaded",
//		logger.Component("catalog"),
//		logger.Path(path),
//		logger.Entries(len(ix.Simple), len(ix.Plural)),
//		logger.Elapsed(start),
//	)
//
//	log.Error("Failed to load language", logger.Error(err), logger.Locale("pt-BR"))
//
// MissingKeys adapts a logger to i18n.WithMissingKeyHandler, reporting each
// untranslated key once at debug level.
package logger
