// Package format scans printf-style placeholders in localized templates and
// substitutes argument values while tracking where each value lands in the
// rendered string.
//
// Templates use a small placeholder grammar:
//
//	%@  %d  %i  %u  %s  %f       implicit arguments, consumed left to right
//	%ld %lu %li %lld %llu        integer forms with length modifiers
//	%2$@  %1$d                   explicit 1-based argument references
//	%%                           literal percent sign, never a placeholder
//
// # Scanning
//
// Scan returns one ArgumentRange per placeholder, sorted by offset:
//
//	ranges := format.Scan("%2$@ and %1$@")
//	// [{Index:1 Offset:0 Length:4} {Index:0 Offset:9 Length:4}]
//
// # Substitution
//
// Substitute splices argument values into the template and reports the ranges
// they occupy in the result. Rich-text consumers use these ranges to style
// individual values (for example to bold an inserted name):
//
//	out, err := format.Substitute("%2$@ and %1$@", ranges, []string{"A", "B"})
//	// out.Text == "B and A"
//	// out.Ranges == [{Index:1 Offset:0 Length:1} {Index:0 Offset:6 Length:1}]
//
// FormatWithArgumentRanges is the non-failing variant used by generated
// accessors. Referencing an argument that was not supplied is a programming
// error and makes it panic with an *ArgumentIndexError.
//
// Ranges are byte offsets into the UTF-8 string. UTF16Ranges converts them to
// UTF-16 code units for consumers that index text that way.
package format
