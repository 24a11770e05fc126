package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/lstrings/core/catalog"
	"github.com/dmitrymomot/lstrings/core/format"
	"github.com/dmitrymomot/lstrings/core/i18n"
)

// buildIndex splits the base-language table into simple and plural entries.
// Both sections number their keys from start in sorted order. A plural entry
// has arguments by construction, since the quantity is always argument 0.
func buildIndex(entries map[string]string, start int) (*catalog.Index, error) {
	simpleKeys := make(map[string]struct{})
	pluralKeys := make(map[string]struct{})
	for key := range entries {
		if base, _, ok := i18n.SplitPluralKey(key); ok {
			pluralKeys[base] = struct{}{}
			continue
		}
		simpleKeys[key] = struct{}{}
	}

	if n := max(len(simpleKeys), len(pluralKeys)); n > 0 && start+n-1 > catalog.MaxID {
		return nil, fmt.Errorf("%d keys starting at %d exceed the id limit %d", n, start, catalog.MaxID)
	}

	simple := make([]catalog.SimpleEntry, 0, len(simpleKeys))
	for i, key := range slices.Sorted(maps.Keys(simpleKeys)) {
		simple = append(simple, catalog.SimpleEntry{
			ID:           start + i,
			Key:          key,
			HasArguments: format.HasPlaceholders(entries[key]),
		})
	}

	plural := make([]catalog.PluralEntry, 0, len(pluralKeys))
	for i, key := range slices.Sorted(maps.Keys(pluralKeys)) {
		plural = append(plural, catalog.PluralEntry{ID: start + i, Key: key})
	}

	return catalog.NewIndex(simple, plural)
}
