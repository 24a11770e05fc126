package i18n

import (
	"fmt"

	"github.com/dmitrymomot/lstrings/core/catalog"
	"github.com/dmitrymomot/lstrings/core/format"
)

// DefaultLang is the language code of the built-in fallback component.
const DefaultLang = "en"

// Template is a resolved localization template with its placeholder ranges.
// Ranges is nil for templates without placeholders.
type Template struct {
	Text   string
	Ranges []format.ArgumentRange
}

// Strings resolves localized templates through a chain of components:
// primary, then the optional secondary, then the fallback, and finally the
// key itself. It is immutable after creation, making it safe for concurrent use.
// Build a new instance when the active locale changes.
type Strings struct {
	primary   *Component
	secondary *Component
	fallback  *Component

	lc                uint32
	rule              PluralRule
	groupingSeparator string

	// Id-addressed tables pre-expanded from the catalog index.
	// plural holds pluralCategoryCount slots per id: id*6 + category.
	simple []*Template
	plural []*Template

	index             *catalog.Index
	missingKeyHandler func(key string)
}

// Option configures a Strings instance during construction.
type Option func(*Strings) error

// WithSecondary sets the component consulted after the primary one,
// typically the base language of a regional or custom language pack.
func WithSecondary(c *Component) Option {
	return func(s *Strings) error {
		s.secondary = c
		return nil
	}
}

// WithFallback replaces the built-in fallback component.
func WithFallback(c *Component) Option {
	return func(s *Strings) error {
		if c == nil {
			return fmt.Errorf("fallback component: %w", ErrNilComponent)
		}
		s.fallback = c
		return nil
	}
}

// WithIndex pre-expands every catalog entry so the id-based accessors
// (Get, Formatted, Plural) are plain slice reads.
func WithIndex(ix *catalog.Index) Option {
	return func(s *Strings) error {
		s.index = ix
		return nil
	}
}

// WithGroupingSeparator overrides the thousands separator used for quantities.
func WithGroupingSeparator(sep string) Option {
	return func(s *Strings) error {
		s.groupingSeparator = sep
		return nil
	}
}

// WithConfig applies the environment configuration.
func WithConfig(cfg Config) Option {
	return func(s *Strings) error {
		if cfg.GroupingSeparator != "" {
			s.groupingSeparator = cfg.GroupingSeparator
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when a key resolves to itself
// because no component has it. Useful for logging missing translations
// during development; lookups are silent by default.
func WithMissingKeyHandler(handler func(key string)) Option {
	return func(s *Strings) error {
		s.missingKeyHandler = handler
		return nil
	}
}

// NewStrings creates a Strings instance with primary as the first lookup stage.
func NewStrings(primary *Component, opts ...Option) (*Strings, error) {
	if primary == nil {
		return nil, fmt.Errorf("primary component: %w", ErrNilComponent)
	}

	s := &Strings{
		primary:  primary,
		fallback: builtinFallback,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	code := primary.pluralCode()
	s.lc = LocaleCode(code)
	s.rule = PluralRuleFor(s.lc)
	if s.groupingSeparator == "" {
		s.groupingSeparator = GroupingSeparatorFor(code)
	}

	if s.index != nil {
		s.expand(s.index)
	}

	return s, nil
}

// Resolve returns the best available template for key. It never fails:
// a key no component has resolves to itself so the gap is visible.
func (s *Strings) Resolve(key string) string {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	s.missing(key)
	return key
}

// ResolveWithSuffix resolves key+suffix through the chain and returns the
// un-suffixed key if no component has it.
func (s *Strings) ResolveWithSuffix(key, suffix string) string {
	if v, ok := s.Lookup(key + suffix); ok {
		return v
	}
	s.missing(key + suffix)
	return key
}

// Lookup walks the chain and reports whether any component has key.
func (s *Strings) Lookup(key string) (string, bool) {
	if v, ok := s.primary.Lookup(key); ok {
		return v, true
	}
	if s.secondary != nil {
		if v, ok := s.secondary.Lookup(key); ok {
			return v, true
		}
	}
	return s.fallback.Lookup(key)
}

// Primary returns the primary component.
func (s *Strings) Primary() *Component {
	return s.primary
}

// Secondary returns the secondary component, or nil.
func (s *Strings) Secondary() *Component {
	return s.secondary
}

// Fallback returns the fallback component. It is never nil.
func (s *Strings) Fallback() *Component {
	return s.fallback
}

// LocaleCode returns the numeric locale code selecting plural rules.
func (s *Strings) LocaleCode() uint32 {
	return s.lc
}

// GroupingSeparator returns the thousands separator used for quantities.
func (s *Strings) GroupingSeparator() string {
	return s.groupingSeparator
}

// Index returns the catalog index the instance was expanded from, or nil.
func (s *Strings) Index() *catalog.Index {
	return s.index
}

// Get returns the pre-expanded template of the simple entry with id.
func (s *Strings) Get(id int) (Template, bool) {
	if id < 0 || id >= len(s.simple) || s.simple[id] == nil {
		return Template{}, false
	}
	return *s.simple[id], true
}

// Formatted renders the simple entry with id using args.
func (s *Strings) Formatted(id int, args ...string) (format.Formatted, error) {
	t, ok := s.Get(id)
	if !ok {
		return format.Formatted{}, fmt.Errorf("%w: simple %d", ErrUnknownID, id)
	}
	return format.Substitute(t.Text, t.Ranges, args)
}

// expand resolves every catalog entry once. Simple entries flagged with
// arguments get their placeholder ranges precomputed; plural entries get
// one template per category.
func (s *Strings) expand(ix *catalog.Index) {
	s.simple = make([]*Template, ix.SimpleIDLimit())
	for _, e := range ix.Simple {
		text, ok := s.Lookup(e.Key)
		if !ok {
			text = e.Key
		}
		t := &Template{Text: text}
		if e.HasArguments {
			t.Ranges = format.Scan(text)
		}
		s.simple[e.ID] = t
	}

	s.plural = make([]*Template, ix.PluralIDLimit()*pluralCategoryCount)
	for _, e := range ix.Plural {
		for _, c := range pluralCategories {
			text, _ := s.pluralTemplate(e.Key, c)
			s.plural[e.ID*pluralCategoryCount+int(c)] = &Template{Text: text, Ranges: format.Scan(text)}
		}
	}
}

func (s *Strings) missing(key string) {
	if s.missingKeyHandler != nil {
		s.missingKeyHandler(key)
	}
}
