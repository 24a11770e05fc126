package format

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Formatted is a rendered string together with the ranges its argument values occupy.
type Formatted struct {
	Text   string
	Ranges []ArgumentRange
}

// RangesOf returns the ranges occupied by the argument at index.
// An argument referenced more than once yields one range per occurrence.
func (f Formatted) RangesOf(index int) []ArgumentRange {
	var out []ArgumentRange
	for _, r := range f.Ranges {
		if r.Index == index {
			out = append(out, r)
		}
	}
	return out
}

// Substitute replaces every placeholder range of template with the matching
// argument value and records where each value ends up in the result.
//
// ranges must be sorted by offset and non-overlapping, as returned by Scan.
// An index outside args returns an *ArgumentIndexError.
func Substitute(template string, ranges []ArgumentRange, args []string) (Formatted, error) {
	if len(ranges) == 0 {
		return Formatted{Text: template}, nil
	}

	size := len(template)
	for _, r := range ranges {
		if r.Index < 0 || r.Index >= len(args) {
			return Formatted{}, &ArgumentIndexError{Index: r.Index, Count: len(args)}
		}
		size += len(args[r.Index]) - r.Length
	}

	var b strings.Builder
	b.Grow(max(size, 0))

	out := make([]ArgumentRange, 0, len(ranges))
	cut := 0
	for _, r := range ranges {
		if r.Offset < cut || r.Length < 0 || r.End() > len(template) {
			return Formatted{}, ErrInvalidRange
		}

		b.WriteString(template[cut:r.Offset])

		value := args[r.Index]
		out = append(out, ArgumentRange{Index: r.Index, Offset: b.Len(), Length: len(value)})
		b.WriteString(value)

		cut = r.End()
	}
	b.WriteString(template[cut:])

	return Formatted{Text: b.String(), Ranges: out}, nil
}

// FormatWithArgumentRanges is Substitute for callers that guarantee the
// argument arity, such as generated accessors. It panics when a placeholder
// references a missing argument.
func FormatWithArgumentRanges(template string, ranges []ArgumentRange, args []string) (string, []ArgumentRange) {
	out, err := Substitute(template, ranges, args)
	if err != nil {
		panic(err)
	}
	return out.Text, out.Ranges
}

// Format scans template and substitutes args in one step.
// It panics under the same conditions as FormatWithArgumentRanges.
func Format(template string, args ...string) Formatted {
	text, ranges := FormatWithArgumentRanges(template, Scan(template), args)
	return Formatted{Text: text, Ranges: ranges}
}

// UTF16Ranges converts byte ranges over text into UTF-16 code unit ranges.
func UTF16Ranges(text string, ranges []ArgumentRange) []ArgumentRange {
	if len(ranges) == 0 {
		return nil
	}

	out := make([]ArgumentRange, len(ranges))
	pos, units := 0, 0
	advance := func(to int) {
		to = min(to, len(text))
		if to < pos {
			pos, units = 0, 0
		}
		for pos < to {
			r, size := utf8.DecodeRuneInString(text[pos:])
			n := utf16.RuneLen(r)
			if n < 0 {
				n = 1
			}
			units += n
			pos += size
		}
	}

	for i, r := range ranges {
		advance(r.Offset)
		start := units
		advance(r.End())
		out[i] = ArgumentRange{Index: r.Index, Offset: start, Length: units - start}
	}
	return out
}
