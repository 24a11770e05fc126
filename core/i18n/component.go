package i18n

import "maps"

// Component is the translation table of one language resource.
// It is immutable after creation and safe for concurrent use.
type Component struct {
	languageCode   string
	displayName    string
	pluralRuleCode string
	entries        map[string]string
}

// ComponentOption configures a Component during construction.
type ComponentOption func(*Component)

// WithPluralRuleCode sets the language code whose plural rules apply to the
// component when it differs from the language code itself (for example a
// custom language pack "ru-raw" that pluralizes like "ru").
func WithPluralRuleCode(code string) ComponentOption {
	return func(c *Component) {
		c.pluralRuleCode = code
	}
}

// WithDisplayName sets the human-readable language name.
func WithDisplayName(name string) ComponentOption {
	return func(c *Component) {
		c.displayName = name
	}
}

// NewComponent creates a component for languageCode. The entries map is copied.
func NewComponent(languageCode string, entries map[string]string, opts ...ComponentOption) *Component {
	c := &Component{
		languageCode: languageCode,
		entries:      maps.Clone(entries),
	}
	if c.entries == nil {
		c.entries = make(map[string]string)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LanguageCode returns the language code the component was created for.
func (c *Component) LanguageCode() string {
	return c.languageCode
}

// DisplayName returns the human-readable language name, if set.
func (c *Component) DisplayName() string {
	return c.displayName
}

// PluralRuleCode returns the explicit plural rule code and whether it was set.
func (c *Component) PluralRuleCode() (string, bool) {
	return c.pluralRuleCode, c.pluralRuleCode != ""
}

// Lookup returns the template stored under key.
func (c *Component) Lookup(key string) (string, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (c *Component) Len() int {
	return len(c.entries)
}

// pluralCode is the code used to select plural rules: the explicit plural
// rule code if any, the language code otherwise.
func (c *Component) pluralCode() string {
	if c.pluralRuleCode != "" {
		return c.pluralRuleCode
	}
	return c.languageCode
}

// builtinFallback is used when no fallback component is configured.
var builtinFallback = NewComponent(DefaultLang, nil, WithDisplayName("English"))
