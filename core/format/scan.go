package format

import "strconv"

// ArgumentRange ties an argument index to the byte range it occupies,
// either as a placeholder token in a template or as a value in a rendered string.
type ArgumentRange struct {
	Index  int
	Offset int
	Length int
}

// End returns the offset just past the range.
func (r ArgumentRange) End() int {
	return r.Offset + r.Length
}

// Scan finds every placeholder in template and returns their argument indices
// and byte ranges sorted by offset. Templates without placeholders yield nil.
//
// Explicit references (%2$@) use the given 1-based position. Implicit
// placeholders take a running counter that only implicit matches advance, so
// mixing both forms is accepted but rarely meaningful.
func Scan(template string) []ArgumentRange {
	var ranges []ArgumentRange
	implicit := 0

	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		if i+1 < len(template) && template[i+1] == '%' {
			i++
			continue
		}

		index, end, ok := placeholderAt(template, i)
		if !ok {
			continue
		}
		if index < 0 {
			index = implicit
			implicit++
		}

		ranges = append(ranges, ArgumentRange{Index: index, Offset: i, Length: end - i})
		i = end - 1
	}

	// Matches are appended in source order, so ranges are already sorted by offset.
	return ranges
}

// HasPlaceholders reports whether template contains at least one placeholder.
func HasPlaceholders(template string) bool {
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		if i+1 < len(template) && template[i+1] == '%' {
			i++
			continue
		}
		if _, _, ok := placeholderAt(template, i); ok {
			return true
		}
	}
	return false
}

// placeholderAt parses a placeholder starting at the '%' at position start.
// It returns the explicit zero-based index (or -1 for implicit placeholders)
// and the offset just past the conversion character.
func placeholderAt(s string, start int) (index, end int, ok bool) {
	index = -1
	pos := start + 1

	digits := pos
	for digits < len(s) && isDigit(s[digits]) {
		digits++
	}
	if digits > pos {
		if digits >= len(s) || s[digits] != '$' {
			return 0, 0, false
		}
		n, err := strconv.Atoi(s[pos:digits])
		if err != nil || n < 1 {
			return 0, 0, false
		}
		index = n - 1
		pos = digits + 1
	}

	end, ok = conversionEnd(s, pos)
	if !ok {
		return 0, 0, false
	}
	return index, end, true
}

// conversionEnd matches a conversion at pos and returns the offset after it.
func conversionEnd(s string, pos int) (int, bool) {
	if pos >= len(s) {
		return 0, false
	}

	switch s[pos] {
	case '@', 'd', 'i', 'u', 's', 'f':
		return pos + 1, true
	case 'l':
		pos++
		if pos < len(s) && s[pos] == 'l' {
			pos++
		}
		if pos < len(s) && isIntegerConversion(s[pos]) {
			return pos + 1, true
		}
	}
	return 0, false
}

func isIntegerConversion(c byte) bool {
	return c == 'd' || c == 'i' || c == 'u'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
