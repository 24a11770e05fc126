package resource

import (
	"fmt"
	"maps"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/lstrings/core/config"
	"github.com/dmitrymomot/lstrings/core/i18n"
)

// Bundle holds the components of every available language and builds lookup
// chains over them. It is read-only after creation.
type Bundle struct {
	components map[string]*i18n.Component
	languages  []string

	// matchable is the subset of languages with a valid BCP 47 tag, in the
	// order the matcher was built with.
	matchable []string
	matcher   language.Matcher
}

// NewBundle creates a bundle over components keyed by language code.
func NewBundle(components map[string]*i18n.Component) *Bundle {
	b := &Bundle{
		components: maps.Clone(components),
		languages:  slices.Sorted(maps.Keys(components)),
	}

	cfg := i18n.Config{FallbackLanguage: i18n.DefaultLang}
	if err := config.Load(&cfg); err != nil {
		cfg.FallbackLanguage = i18n.DefaultLang
	}

	// The first supported tag is the matcher's default, so the fallback
	// language goes first when present.
	ordered := slices.Clone(b.languages)
	if i := slices.Index(ordered, cfg.FallbackLanguage); i > 0 {
		ordered = append([]string{cfg.FallbackLanguage}, slices.Delete(ordered, i, i+1)...)
	}

	var tags []language.Tag
	for _, code := range ordered {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		b.matchable = append(b.matchable, code)
	}
	if len(tags) > 0 {
		b.matcher = language.NewMatcher(tags)
	}
	return b
}

// Languages returns the available language codes in sorted order.
func (b *Bundle) Languages() []string {
	return slices.Clone(b.languages)
}

// Component returns the component of lang.
func (b *Bundle) Component(lang string) (*i18n.Component, bool) {
	c, ok := b.components[lang]
	return c, ok
}

// Match picks the available language that best fits the preferences, which
// may be language codes or Accept-Language header values. A preference that
// names an available code exactly wins; otherwise the CLDR matcher decides,
// returning the fallback language (or the first available one) when nothing
// is acceptable.
func (b *Bundle) Match(preferred ...string) string {
	for _, p := range preferred {
		if _, ok := b.components[p]; ok {
			return p
		}
	}

	var tags []language.Tag
	for _, p := range preferred {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}

	if b.matcher == nil {
		if len(b.languages) == 0 {
			return ""
		}
		return b.languages[0]
	}
	_, i, _ := b.matcher.Match(tags...)
	return b.matchable[i]
}

// Strings builds the lookup chain for lang: its own component first, then
// the component of its base language (for "pt-BR" or "ru-raw"), then the
// configured fallback language. opts are applied last.
func (b *Bundle) Strings(lang string, opts ...i18n.Option) (*i18n.Strings, error) {
	primary, ok := b.components[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}

	var cfg i18n.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	chain := []i18n.Option{i18n.WithConfig(cfg)}
	if base := i18n.BaseLanguage(lang); base != lang {
		if c, ok := b.components[base]; ok {
			chain = append(chain, i18n.WithSecondary(c))
		}
	}
	if c, ok := b.components[cfg.FallbackLanguage]; ok {
		chain = append(chain, i18n.WithFallback(c))
	}

	return i18n.NewStrings(primary, append(chain, opts...)...)
}
