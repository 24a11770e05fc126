package i18n

import (
	"strconv"
	"strings"
)

// FormatQuantity formats n with sep between groups of three digits:
// FormatQuantity(1234567, ",") == "1,234,567". An empty separator disables grouping.
func FormatQuantity(n int, sep string) string {
	digits := strconv.FormatUint(abs(n), 10)
	if sep == "" || len(digits) <= 3 {
		if n < 0 {
			return "-" + digits
		}
		return digits
	}

	var b strings.Builder
	groups := (len(digits) - 1) / 3
	b.Grow(len(digits) + groups*len(sep) + 1)

	if n < 0 {
		b.WriteByte('-')
	}

	head := len(digits) - groups*3
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
