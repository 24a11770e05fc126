package i18n_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lstrings/core/i18n"
)

type pluralCase struct {
	n        int
	expected i18n.PluralCategory
}

func runPluralCases(t *testing.T, rule i18n.PluralRule, cases []pluralCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(strconv.Itoa(tt.n), func(t *testing.T) {
			assert.Equal(t, tt.expected, rule(tt.n), "For n=%d", tt.n)
		})
	}
}

func TestOneOtherRule(t *testing.T) {
	runPluralCases(t, i18n.OneOtherRule, []pluralCase{
		{0, i18n.PluralOther},
		{1, i18n.PluralOne},
		{2, i18n.PluralOther},
		{21, i18n.PluralOther},
		{100, i18n.PluralOther},
		{-1, i18n.PluralOne},
		{-2, i18n.PluralOther},
	})
}

func TestEastSlavicRule(t *testing.T) {
	runPluralCases(t, i18n.EastSlavicRule, []pluralCase{
		{0, i18n.PluralMany},
		{1, i18n.PluralOne},
		{2, i18n.PluralFew},
		{4, i18n.PluralFew},
		{5, i18n.PluralMany},
		{11, i18n.PluralMany},
		{12, i18n.PluralMany},
		{14, i18n.PluralMany},
		{20, i18n.PluralMany},
		{21, i18n.PluralOne},
		{22, i18n.PluralFew},
		{100, i18n.PluralMany},
		{101, i18n.PluralOne},
		{111, i18n.PluralMany},
		{112, i18n.PluralMany},
		{-21, i18n.PluralOne},
		{math.MinInt, i18n.PluralMany},
	})
}

func TestPolishRule(t *testing.T) {
	runPluralCases(t, i18n.PolishRule, []pluralCase{
		{0, i18n.PluralMany},
		{1, i18n.PluralOne},
		{2, i18n.PluralFew},
		{4, i18n.PluralFew},
		{5, i18n.PluralMany},
		{11, i18n.PluralMany},
		{13, i18n.PluralMany},
		{21, i18n.PluralMany},
		{22, i18n.PluralFew},
		{100, i18n.PluralMany},
		{102, i18n.PluralFew},
	})
}

func TestCzechRule(t *testing.T) {
	runPluralCases(t, i18n.CzechRule, []pluralCase{
		{0, i18n.PluralOther},
		{1, i18n.PluralOne},
		{2, i18n.PluralFew},
		{4, i18n.PluralFew},
		{5, i18n.PluralOther},
		{22, i18n.PluralOther},
	})
}

func TestSerboCroatianRule(t *testing.T) {
	runPluralCases(t, i18n.SerboCroatianRule, []pluralCase{
		{1, i18n.PluralOne},
		{3, i18n.PluralFew},
		{5, i18n.PluralOther},
		{11, i18n.PluralOther},
		{21, i18n.PluralOne},
		{24, i18n.PluralFew},
	})
}

func TestSlovenianRule(t *testing.T) {
	runPluralCases(t, i18n.SlovenianRule, []pluralCase{
		{1, i18n.PluralOne},
		{2, i18n.PluralTwo},
		{3, i18n.PluralFew},
		{4, i18n.PluralFew},
		{5, i18n.PluralOther},
		{101, i18n.PluralOne},
		{102, i18n.PluralTwo},
	})
}

func TestLithuanianRule(t *testing.T) {
	runPluralCases(t, i18n.LithuanianRule, []pluralCase{
		{0, i18n.PluralOther},
		{1, i18n.PluralOne},
		{2, i18n.PluralFew},
		{9, i18n.PluralFew},
		{10, i18n.PluralOther},
		{11, i18n.PluralOther},
		{19, i18n.PluralOther},
		{21, i18n.PluralOne},
		{29, i18n.PluralFew},
	})
}

func TestLatvianRule(t *testing.T) {
	runPluralCases(t, i18n.LatvianRule, []pluralCase{
		{0, i18n.PluralZero},
		{1, i18n.PluralOne},
		{2, i18n.PluralOther},
		{10, i18n.PluralZero},
		{11, i18n.PluralZero},
		{19, i18n.PluralZero},
		{21, i18n.PluralOne},
		{22, i18n.PluralOther},
	})
}

func TestRomanianRule(t *testing.T) {
	runPluralCases(t, i18n.RomanianRule, []pluralCase{
		{0, i18n.PluralFew},
		{1, i18n.PluralOne},
		{2, i18n.PluralFew},
		{19, i18n.PluralFew},
		{20, i18n.PluralOther},
		{101, i18n.PluralOther},
		{102, i18n.PluralFew},
		{119, i18n.PluralFew},
		{120, i18n.PluralOther},
	})
}

func TestArabicRule(t *testing.T) {
	runPluralCases(t, i18n.ArabicRule, []pluralCase{
		{0, i18n.PluralZero},
		{1, i18n.PluralOne},
		{2, i18n.PluralTwo},
		{3, i18n.PluralFew},
		{10, i18n.PluralFew},
		{11, i18n.PluralMany},
		{99, i18n.PluralMany},
		{100, i18n.PluralOther},
		{102, i18n.PluralOther},
		{103, i18n.PluralFew},
		{111, i18n.PluralMany},
	})
}

func TestCelticRules(t *testing.T) {
	t.Run("irish", func(t *testing.T) {
		runPluralCases(t, i18n.IrishRule, []pluralCase{
			{1, i18n.PluralOne},
			{2, i18n.PluralTwo},
			{6, i18n.PluralFew},
			{7, i18n.PluralMany},
			{10, i18n.PluralMany},
			{11, i18n.PluralOther},
		})
	})

	t.Run("welsh", func(t *testing.T) {
		runPluralCases(t, i18n.WelshRule, []pluralCase{
			{0, i18n.PluralZero},
			{1, i18n.PluralOne},
			{2, i18n.PluralTwo},
			{3, i18n.PluralFew},
			{4, i18n.PluralOther},
			{6, i18n.PluralMany},
		})
	})

	t.Run("scottish gaelic", func(t *testing.T) {
		runPluralCases(t, i18n.ScottishGaelicRule, []pluralCase{
			{1, i18n.PluralOne},
			{11, i18n.PluralOne},
			{12, i18n.PluralTwo},
			{13, i18n.PluralFew},
			{20, i18n.PluralOther},
		})
	})
}

func TestRomanceRules(t *testing.T) {
	t.Run("french", func(t *testing.T) {
		runPluralCases(t, i18n.FrenchRule, []pluralCase{
			{0, i18n.PluralOne},
			{1, i18n.PluralOne},
			{2, i18n.PluralOther},
			{999999, i18n.PluralOther},
			{1000000, i18n.PluralMany},
			{2000000, i18n.PluralMany},
		})
	})

	t.Run("spanish", func(t *testing.T) {
		runPluralCases(t, i18n.RomanceRule, []pluralCase{
			{0, i18n.PluralOther},
			{1, i18n.PluralOne},
			{2, i18n.PluralOther},
			{1000000, i18n.PluralMany},
		})
	})
}

func TestFilipinoRule(t *testing.T) {
	runPluralCases(t, i18n.FilipinoRule, []pluralCase{
		{1, i18n.PluralOne},
		{3, i18n.PluralOne},
		{4, i18n.PluralOther},
		{5, i18n.PluralOne},
		{16, i18n.PluralOther},
		{19, i18n.PluralOther},
	})
}

func TestNoPluralRule(t *testing.T) {
	runPluralCases(t, i18n.NoPluralRule, []pluralCase{
		{0, i18n.PluralOther},
		{1, i18n.PluralOther},
		{2, i18n.PluralOther},
	})
}

func TestPluralRuleForLanguage(t *testing.T) {
	tests := []struct {
		lang string
		n    int
		want i18n.PluralCategory
	}{
		{"en", 1, i18n.PluralOne},
		{"en_US", 1, i18n.PluralOne},
		{"de", 0, i18n.PluralOther},
		{"ru", 21, i18n.PluralOne},
		{"RU", 22, i18n.PluralFew},
		{"uk-UA", 5, i18n.PluralMany},
		{"pl", 21, i18n.PluralMany},
		{"pt_BR", 0, i18n.PluralOne},
		{"fr-CA", 1000000, i18n.PluralMany},
		{"ar", 2, i18n.PluralTwo},
		{"ja", 1, i18n.PluralOther},
		{"zh-Hans", 1, i18n.PluralOther},
		{"cs", 3, i18n.PluralFew},
		{"xx-pack", 1, i18n.PluralOne},
		{"", 2, i18n.PluralOther},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.PluralRuleForLanguage(tt.lang)(tt.n))
			assert.Equal(t, tt.want, i18n.PluralCategoryFor(i18n.LocaleCode(tt.lang), tt.n))
		})
	}
}

func TestSupportedPluralCategories(t *testing.T) {
	tests := []struct {
		name     string
		rule     i18n.PluralRule
		expected []i18n.PluralCategory
	}{
		{"one other", i18n.OneOtherRule, []i18n.PluralCategory{i18n.PluralOne, i18n.PluralOther}},
		{"east slavic", i18n.EastSlavicRule, []i18n.PluralCategory{i18n.PluralOne, i18n.PluralFew, i18n.PluralMany}},
		{"arabic", i18n.ArabicRule, []i18n.PluralCategory{
			i18n.PluralZero, i18n.PluralOne, i18n.PluralTwo, i18n.PluralFew, i18n.PluralMany, i18n.PluralOther,
		}},
		{"none", i18n.NoPluralRule, []i18n.PluralCategory{i18n.PluralOther}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.SupportedPluralCategories(tt.rule))
		})
	}
}

func TestPluralCategory(t *testing.T) {
	assert.Equal(t, "few", i18n.PluralFew.String())
	assert.Equal(t, "_3_10", i18n.PluralFew.Suffix())
	assert.Equal(t, "_any", i18n.PluralOther.Suffix())
	assert.Equal(t, "_0", i18n.PluralZero.Suffix())
	assert.Len(t, i18n.PluralCategories(), 6)
	assert.Equal(t, "PluralCategory(9)", i18n.PluralCategory(9).String())

	tests := []struct {
		key      string
		base     string
		category i18n.PluralCategory
		ok       bool
	}{
		{"Chat.Members_1", "Chat.Members", i18n.PluralOne, true},
		{"Chat.Members_3_10", "Chat.Members", i18n.PluralFew, true},
		{"Chat.Members_many", "Chat.Members", i18n.PluralMany, true},
		{"Chat.Members_any", "Chat.Members", i18n.PluralOther, true},
		{"Chat.Members_0", "Chat.Members", i18n.PluralZero, true},
		{"Chat.Members_2", "Chat.Members", i18n.PluralTwo, true},
		{"Chat.Title", "Chat.Title", i18n.PluralOther, false},
		{"_any", "_any", i18n.PluralOther, false},
	}
	for _, tt := range tests {
		base, c, ok := i18n.SplitPluralKey(tt.key)
		assert.Equal(t, tt.base, base, tt.key)
		assert.Equal(t, tt.category, c, tt.key)
		assert.Equal(t, tt.ok, ok, tt.key)
	}
}
