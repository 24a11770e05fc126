package i18n

// PluralRule determines which plural category to use for an integer quantity.
// It follows Unicode CLDR (Common Locale Data Repository) integer rules.
type PluralRule func(n int) PluralCategory

// abs returns |n| without overflowing on the minimum int.
func abs(n int) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

func between(v, lo, hi uint64) bool {
	return v >= lo && v <= hi
}

// NoPluralRule is for languages without grammatical number
// (Japanese, Chinese, Korean, Vietnamese, Thai, Indonesian, ...).
var NoPluralRule PluralRule = func(int) PluralCategory {
	return PluralOther
}

// OneOtherRule is the Germanic pattern: one (1), other.
// Also the default for languages without a specific rule.
var OneOtherRule PluralRule = func(n int) PluralCategory {
	if abs(n) == 1 {
		return PluralOne
	}
	return PluralOther
}

// ZeroOneRule treats 0 and 1 as singular (Hindi, Persian, Armenian, ...).
var ZeroOneRule PluralRule = func(n int) PluralCategory {
	if abs(n) <= 1 {
		return PluralOne
	}
	return PluralOther
}

// FrenchRule: one (0, 1), many (non-zero multiples of a million), other.
var FrenchRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	switch {
	case i <= 1:
		return PluralOne
	case i%1000000 == 0:
		return PluralMany
	default:
		return PluralOther
	}
}

// RomanceRule (Spanish, Italian, Catalan): one (1), many (non-zero multiples
// of a million), other.
var RomanceRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	switch {
	case i == 1:
		return PluralOne
	case i != 0 && i%1000000 == 0:
		return PluralMany
	default:
		return PluralOther
	}
}

// EastSlavicRule (Russian, Ukrainian, Belarusian):
// one (1, 21, 31, ...), few (2-4, 22-24, ...), many (everything else).
var EastSlavicRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	mod10, mod100 := i%10, i%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return PluralOne
	case between(mod10, 2, 4) && !between(mod100, 12, 14):
		return PluralFew
	default:
		return PluralMany
	}
}

// PolishRule: one (1 only), few (2-4, 22-24, ... except 12-14), many.
var PolishRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	mod10, mod100 := i%10, i%100
	switch {
	case i == 1:
		return PluralOne
	case between(mod10, 2, 4) && !between(mod100, 12, 14):
		return PluralFew
	default:
		return PluralMany
	}
}

// CzechRule (Czech, Slovak): one (1), few (2-4), other.
var CzechRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	switch {
	case i == 1:
		return PluralOne
	case between(i, 2, 4):
		return PluralFew
	default:
		return PluralOther
	}
}

// SerboCroatianRule (Croatian, Serbian, Bosnian):
// one (1, 21, ...), few (2-4, 22-24, ...), other.
var SerboCroatianRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	mod10, mod100 := i%10, i%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return PluralOne
	case between(mod10, 2, 4) && !between(mod100, 12, 14):
		return PluralFew
	default:
		return PluralOther
	}
}

// SlovenianRule: one (x01), two (x02), few (x03-x04), other.
var SlovenianRule PluralRule = func(n int) PluralCategory {
	switch abs(n) % 100 {
	case 1:
		return PluralOne
	case 2:
		return PluralTwo
	case 3, 4:
		return PluralFew
	default:
		return PluralOther
	}
}

// LithuanianRule: one (1, 21, ... not 11-19), few (2-9, 22-29, ... not 11-19), other.
var LithuanianRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	mod10, mod100 := i%10, i%100
	switch {
	case between(mod100, 11, 19):
		return PluralOther
	case mod10 == 1:
		return PluralOne
	case mod10 >= 2:
		return PluralFew
	default:
		return PluralOther
	}
}

// LatvianRule: zero (0, 10-20, 30, ...), one (1, 21, ... not 11), other.
var LatvianRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	mod10, mod100 := i%10, i%100
	switch {
	case mod10 == 0 || between(mod100, 11, 19):
		return PluralZero
	case mod10 == 1 && mod100 != 11:
		return PluralOne
	default:
		return PluralOther
	}
}

// RomanianRule: one (1), few (0, 2-19, 102-119, ...), other.
var RomanianRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	switch {
	case i == 1:
		return PluralOne
	case i == 0 || between(i%100, 2, 19):
		return PluralFew
	default:
		return PluralOther
	}
}

// ArabicRule uses all six categories:
// zero (0), one (1), two (2), few (x03-x10), many (x11-x99), other.
var ArabicRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	mod100 := i % 100
	switch {
	case i == 0:
		return PluralZero
	case i == 1:
		return PluralOne
	case i == 2:
		return PluralTwo
	case between(mod100, 3, 10):
		return PluralFew
	case between(mod100, 11, 99):
		return PluralMany
	default:
		return PluralOther
	}
}

// HebrewRule: one (1), two (2), other.
var HebrewRule PluralRule = func(n int) PluralCategory {
	switch abs(n) {
	case 1:
		return PluralOne
	case 2:
		return PluralTwo
	default:
		return PluralOther
	}
}

// IrishRule: one (1), two (2), few (3-6), many (7-10), other.
var IrishRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	switch {
	case i == 1:
		return PluralOne
	case i == 2:
		return PluralTwo
	case between(i, 3, 6):
		return PluralFew
	case between(i, 7, 10):
		return PluralMany
	default:
		return PluralOther
	}
}

// WelshRule: zero (0), one (1), two (2), few (3), many (6), other.
var WelshRule PluralRule = func(n int) PluralCategory {
	switch abs(n) {
	case 0:
		return PluralZero
	case 1:
		return PluralOne
	case 2:
		return PluralTwo
	case 3:
		return PluralFew
	case 6:
		return PluralMany
	default:
		return PluralOther
	}
}

// MalteseRule: one (1), two (2), few (0, x03-x10), many (x11-x19), other.
var MalteseRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	mod100 := i % 100
	switch {
	case i == 1:
		return PluralOne
	case i == 2:
		return PluralTwo
	case i == 0 || between(mod100, 3, 10):
		return PluralFew
	case between(mod100, 11, 19):
		return PluralMany
	default:
		return PluralOther
	}
}

// ScottishGaelicRule: one (1, 11), two (2, 12), few (3-10, 13-19), other.
var ScottishGaelicRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	switch {
	case i == 1 || i == 11:
		return PluralOne
	case i == 2 || i == 12:
		return PluralTwo
	case between(i, 3, 10) || between(i, 13, 19):
		return PluralFew
	default:
		return PluralOther
	}
}

// IcelandicRule (Icelandic, Macedonian): one (1, 21, ... not 11), other.
var IcelandicRule PluralRule = func(n int) PluralCategory {
	i := abs(n)
	if i%10 == 1 && i%100 != 11 {
		return PluralOne
	}
	return PluralOther
}

// FilipinoRule: one (1-3 and numbers not ending in 4, 6, 9), other.
var FilipinoRule PluralRule = func(n int) PluralCategory {
	switch abs(n) % 10 {
	case 4, 6, 9:
		return PluralOther
	default:
		return PluralOne
	}
}

// pluralFamilies assigns rules to base language codes. Languages not listed
// use OneOtherRule.
var pluralFamilies = []struct {
	rule  PluralRule
	langs []string
}{
	{NoPluralRule, []string{"ja", "zh", "ko", "vi", "th", "id", "ms", "my", "lo", "km", "jv", "bo", "dz", "ig", "yo", "sah", "ii", "to", "su"}},
	{ZeroOneRule, []string{"hi", "fa", "bn", "gu", "kn", "zu", "am", "as", "hy", "kab", "ln", "ti", "wa"}},
	{FrenchRule, []string{"fr", "pt"}},
	{RomanceRule, []string{"es", "it", "ca"}},
	{EastSlavicRule, []string{"ru", "uk", "be"}},
	{PolishRule, []string{"pl"}},
	{CzechRule, []string{"cs", "sk"}},
	{SerboCroatianRule, []string{"hr", "sr", "bs", "sh"}},
	{SlovenianRule, []string{"sl", "dsb", "hsb"}},
	{LithuanianRule, []string{"lt"}},
	{LatvianRule, []string{"lv", "prg"}},
	{RomanianRule, []string{"ro", "mo"}},
	{ArabicRule, []string{"ar", "ars"}},
	{HebrewRule, []string{"he"}},
	{IrishRule, []string{"ga"}},
	{WelshRule, []string{"cy"}},
	{MalteseRule, []string{"mt"}},
	{ScottishGaelicRule, []string{"gd"}},
	{IcelandicRule, []string{"is", "mk"}},
	{FilipinoRule, []string{"fil", "tl"}},
}

// pluralRules maps numeric locale codes to rules.
var pluralRules = func() map[uint32]PluralRule {
	m := make(map[uint32]PluralRule)
	for _, f := range pluralFamilies {
		for _, lang := range f.langs {
			m[packLocaleCode(lang)] = f.rule
		}
	}
	return m
}()

// PluralRuleFor returns the rule for a numeric locale code.
func PluralRuleFor(lc uint32) PluralRule {
	if rule, ok := pluralRules[lc]; ok {
		return rule
	}
	return OneOtherRule
}

// PluralRuleForLanguage returns the rule for a language code such as "ru" or "pt_BR".
func PluralRuleForLanguage(lang string) PluralRule {
	return PluralRuleFor(LocaleCode(lang))
}

// PluralCategoryFor selects the category of n under the rules of lc.
func PluralCategoryFor(lc uint32, n int) PluralCategory {
	return PluralRuleFor(lc)(n)
}

// SupportedPluralCategories returns which categories a rule actually uses.
// This is useful for validating translations.
func SupportedPluralCategories(rule PluralRule) []PluralCategory {
	seen := make(map[PluralCategory]bool)

	testNumbers := []int{0, 1, 2, 3, 4, 5, 6, 7, 10, 11, 12, 13, 14, 19, 20, 21, 22, 100, 101, 102, 111, 1000, 1000000}
	for _, n := range testNumbers {
		seen[rule(n)] = true
	}

	var result []PluralCategory
	for _, c := range pluralCategories {
		if seen[c] {
			result = append(result, c)
		}
	}
	return result
}
