package logger

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Helpers return the zero slog.Attr for empty input. slog drops it, so a
// helper can be passed unconditionally: log.Info("msg", logger.Error(err)).

// Error attaches err under "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Elapsed records the time since start under "elapsed".
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Locale attaches a language code.
func Locale(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("locale", code)
}

// TranslationKey attaches a localization key.
func TranslationKey(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("key", key)
}

// Path attaches a file or resource path.
func Path(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("path", path)
}

// Size attaches a byte count under "bytes".
func Size(n int) slog.Attr {
	return slog.Int("bytes", n)
}

// Compression attaches the compression of a catalog blob.
func Compression(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("compression", name)
}

// Count attaches an integer counter under key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Entries groups the section sizes of a catalog index.
func Entries(simple, plural int) slog.Attr {
	return slog.Group("entries", slog.Int("simple", simple), slog.Int("plural", plural))
}

// MissingKeys returns a handler that logs each missing translation key of
// locale once at debug level. It fits i18n.WithMissingKeyHandler.
func MissingKeys(log *slog.Logger, locale string) func(key string) {
	if log == nil {
		log = slog.Default()
	}
	var seen sync.Map
	return func(key string) {
		if _, loaded := seen.LoadOrStore(key, struct{}{}); loaded {
			return
		}
		log.LogAttrs(context.Background(), slog.LevelDebug, "Missing translation",
			Locale(locale), TranslationKey(key))
	}
}
