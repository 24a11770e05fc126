package i18n

import (
	"sync/atomic"

	"github.com/dmitrymomot/lstrings/core/format"
)

// Holder publishes the active Strings instance. When the locale changes the
// application builds a new instance and stores it; readers that already
// loaded the previous instance keep using it, so nobody observes a half-built catalog.
type Holder struct {
	current atomic.Pointer[Strings]
}

// NewHolder creates a Holder publishing s.
func NewHolder(s *Strings) *Holder {
	if s == nil {
		panic("i18n: strings instance is not provided")
	}
	h := &Holder{}
	h.current.Store(s)
	return h
}

// Load returns the active instance.
func (h *Holder) Load() *Strings {
	return h.current.Load()
}

// Store replaces the active instance. A nil instance is ignored.
func (h *Holder) Store(s *Strings) {
	if s != nil {
		h.current.Store(s)
	}
}

// Swap replaces the active instance and returns the previous one.
func (h *Holder) Swap(s *Strings) *Strings {
	if s == nil {
		return h.Load()
	}
	return h.current.Swap(s)
}

// Resolve resolves key with the active instance.
func (h *Holder) Resolve(key string) string {
	return h.Load().Resolve(key)
}

// PluralString renders a plural key with the active instance.
func (h *Holder) PluralString(quantity int, key string) string {
	return h.Load().PluralString(quantity, key)
}

// PluralFormatted renders a plural key with arguments using the active instance.
func (h *Holder) PluralFormatted(quantity int, key string, args ...string) string {
	return h.Load().PluralFormatted(quantity, key, args...)
}

// Format resolves key with the active instance and substitutes args.
func (h *Holder) Format(key string, args ...string) format.Formatted {
	return format.Format(h.Load().Resolve(key), args...)
}
