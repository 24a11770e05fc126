package i18n

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLanguage reduces a language code to its canonical lowercase base
// language: "pt_BR" -> "pt", "en-US" -> "en", "ru-raw" -> "ru".
// Deprecated codes are canonicalized where x/text knows them ("iw" -> "he").
func BaseLanguage(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "_-"); i >= 0 {
		code = code[:i]
	}
	if code == "" {
		return ""
	}

	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	base, conf := tag.Base()
	if conf == language.No {
		return code
	}
	return base.String()
}

// LocaleCode derives the numeric locale code of a language code: the ASCII
// bytes of its base language packed big-endian ("ru" -> 0x7275).
func LocaleCode(code string) uint32 {
	return packLocaleCode(BaseLanguage(code))
}

func packLocaleCode(base string) uint32 {
	var lc uint32
	for i := 0; i < len(base); i++ {
		lc = lc<<8 | uint32(base[i])
	}
	return lc
}

// LocaleCodeString turns a numeric locale code back into its base language.
func LocaleCodeString(lc uint32) string {
	var buf [4]byte
	n := len(buf)
	for lc != 0 && n > 0 {
		n--
		buf[n] = byte(lc)
		lc >>= 8
	}
	return string(buf[n:])
}

// DefaultGroupingSeparator is used when a locale's separator cannot be determined.
const DefaultGroupingSeparator = ","

var groupingSeparators sync.Map // base language -> separator

// GroupingSeparatorFor returns the thousands separator CLDR specifies for the
// language, as rendered by golang.org/x/text/message.
func GroupingSeparatorFor(code string) string {
	base := BaseLanguage(code)
	if base == "" {
		return DefaultGroupingSeparator
	}
	if sep, ok := groupingSeparators.Load(base); ok {
		return sep.(string)
	}

	sep := DefaultGroupingSeparator
	if tag, err := language.Parse(base); err == nil {
		if s := separatorOf(message.NewPrinter(tag).Sprintf("%d", 1234567)); s != "" {
			sep = s
		}
	}

	actual, _ := groupingSeparators.LoadOrStore(base, sep)
	return actual.(string)
}

// separatorOf extracts the first run of non-digit characters from a grouped number.
func separatorOf(grouped string) string {
	start := -1
	for i, r := range grouped {
		isDigit := unicode.IsDigit(r)
		switch {
		case start < 0 && !isDigit:
			start = i
		case start >= 0 && isDigit:
			return grouped[start:i]
		}
	}
	return ""
}
