package i18n

import (
	"fmt"

	"github.com/dmitrymomot/lstrings/core/format"
)

// PluralCategory is a CLDR plural category. Every quantity maps to exactly one.
type PluralCategory uint8

// Plural categories in ordinal order. The ordinal addresses a plural slot:
// id*6 + category.
const (
	PluralZero PluralCategory = iota
	PluralOne
	PluralTwo
	PluralFew
	PluralMany
	PluralOther
)

const pluralCategoryCount = 6

var pluralCategories = [pluralCategoryCount]PluralCategory{
	PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther,
}

var pluralCategoryNames = [pluralCategoryCount]string{"zero", "one", "two", "few", "many", "other"}

// Key suffixes selecting a category's template: "Chat.Members_1", "Chat.Members_any".
var pluralSuffixes = [pluralCategoryCount]string{"_0", "_1", "_2", "_3_10", "_many", "_any"}

// String returns the CLDR name of the category.
func (c PluralCategory) String() string {
	if int(c) < pluralCategoryCount {
		return pluralCategoryNames[c]
	}
	return fmt.Sprintf("PluralCategory(%d)", uint8(c))
}

// Suffix returns the key suffix of the category.
func (c PluralCategory) Suffix() string {
	if int(c) < pluralCategoryCount {
		return pluralSuffixes[c]
	}
	return pluralSuffixes[PluralOther]
}

// PluralCategories returns all categories in ordinal order.
func PluralCategories() []PluralCategory {
	return pluralCategories[:]
}

// SplitPluralKey splits a suffixed key such as "Chat.Members_3_10" into its
// base key and category.
func SplitPluralKey(key string) (string, PluralCategory, bool) {
	// No suffix ends with another, so the order of checks does not matter.
	for _, c := range pluralCategories {
		suffix := pluralSuffixes[c]
		if len(key) > len(suffix) && key[len(key)-len(suffix):] == suffix {
			return key[:len(key)-len(suffix)], c, true
		}
	}
	return key, PluralOther, false
}

// PluralCategory returns the category the instance's locale uses for quantity.
func (s *Strings) PluralCategory(quantity int) PluralCategory {
	return s.rule(quantity)
}

// PluralString renders the plural template of key for quantity. The quantity,
// grouped with the locale's separator, is the only argument.
func (s *Strings) PluralString(quantity int, key string) string {
	return s.renderPlural(quantity, key, []string{s.FormatQuantity(quantity)}).Text
}

// PluralFormatted renders the plural template of key for quantity with args.
// The quantity only selects the category; a template that prints it expects
// the caller to pass it, for example as FormatQuantity(quantity).
// It panics if the template references an argument that was not supplied.
func (s *Strings) PluralFormatted(quantity int, key string, args ...string) string {
	return s.PluralFormattedRanges(quantity, key, args...).Text
}

// PluralFormattedRanges is PluralFormatted returning the argument ranges too.
func (s *Strings) PluralFormattedRanges(quantity int, key string, args ...string) format.Formatted {
	return s.renderPlural(quantity, key, args)
}

func (s *Strings) renderPlural(quantity int, key string, args []string) format.Formatted {
	text, ok := s.pluralTemplate(key, s.rule(quantity))
	if !ok {
		s.missing(key)
	}
	return format.Format(text, args...)
}

// Plural renders the pre-expanded plural entry with id for quantity. Without
// args the grouped quantity is substituted, as in PluralString; otherwise
// exactly args are.
func (s *Strings) Plural(id, quantity int, args ...string) (format.Formatted, error) {
	if id < 0 || id >= len(s.plural)/pluralCategoryCount {
		return format.Formatted{}, fmt.Errorf("%w: plural %d", ErrUnknownID, id)
	}
	t := s.plural[id*pluralCategoryCount+int(s.rule(quantity))]
	if t == nil {
		return format.Formatted{}, fmt.Errorf("%w: plural %d", ErrUnknownID, id)
	}
	if len(args) == 0 {
		args = []string{s.FormatQuantity(quantity)}
	}
	return format.Substitute(t.Text, t.Ranges, args)
}

// FormatQuantity groups quantity with the instance's separator.
func (s *Strings) FormatQuantity(quantity int) string {
	return FormatQuantity(quantity, s.groupingSeparator)
}

// pluralTemplate resolves key for category c, falling back to the "other"
// template and then to the key itself.
func (s *Strings) pluralTemplate(key string, c PluralCategory) (string, bool) {
	if v, ok := s.Lookup(key + c.Suffix()); ok {
		return v, true
	}
	if c != PluralOther {
		if v, ok := s.Lookup(key + PluralOther.Suffix()); ok {
			return v, true
		}
	}
	return key, false
}
