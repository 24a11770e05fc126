package catalog

import (
	"fmt"
	"unicode/utf8"
)

// MaxID bounds entry ids. Consumers size id-addressed tables by the largest id,
// so ids must stay dense and small.
const MaxID = 1<<24 - 1

// SimpleEntry maps an accessor id to a plain localization key.
type SimpleEntry struct {
	ID           int
	Key          string
	HasArguments bool
}

// PluralEntry maps an accessor id to a pluralized localization key.
type PluralEntry struct {
	ID  int
	Key string
}

// Index is the decoded key catalog. It is read-only once built and safe for
// concurrent use.
type Index struct {
	Simple []SimpleEntry
	Plural []PluralEntry

	withArgs    map[int]struct{}
	simpleByKey map[string]int
	pluralByKey map[string]int
	maxSimpleID int
	maxPluralID int
}

// NewIndex validates the entries and builds an Index over them.
// The slices are retained; callers must not modify them afterwards.
func NewIndex(simple []SimpleEntry, plural []PluralEntry) (*Index, error) {
	ix := &Index{
		Simple:      simple,
		Plural:      plural,
		withArgs:    make(map[int]struct{}),
		simpleByKey: make(map[string]int, len(simple)),
		pluralByKey: make(map[string]int, len(plural)),
		maxSimpleID: -1,
		maxPluralID: -1,
	}

	seen := make(map[int]struct{}, len(simple))
	for i, e := range simple {
		if err := validateEntry(e.ID, e.Key, seen); err != nil {
			return nil, fmt.Errorf("simple entry %d: %w", i, err)
		}
		if e.HasArguments {
			ix.withArgs[e.ID] = struct{}{}
		}
		ix.simpleByKey[e.Key] = i
		ix.maxSimpleID = max(ix.maxSimpleID, e.ID)
	}

	clear(seen)
	for i, e := range plural {
		if err := validateEntry(e.ID, e.Key, seen); err != nil {
			return nil, fmt.Errorf("plural entry %d: %w", i, err)
		}
		ix.pluralByKey[e.Key] = i
		ix.maxPluralID = max(ix.maxPluralID, e.ID)
	}

	return ix, nil
}

func validateEntry(id int, key string, seen map[int]struct{}) error {
	if id < 0 || id > MaxID {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	if key == "" || !utf8.ValidString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if _, ok := seen[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	seen[id] = struct{}{}
	return nil
}

// HasArguments reports whether the simple entry with id has placeholders.
func (ix *Index) HasArguments(id int) bool {
	_, ok := ix.withArgs[id]
	return ok
}

// LookupSimple returns the simple entry for key.
func (ix *Index) LookupSimple(key string) (SimpleEntry, bool) {
	i, ok := ix.simpleByKey[key]
	if !ok {
		return SimpleEntry{}, false
	}
	return ix.Simple[i], true
}

// LookupPlural returns the plural entry for key.
func (ix *Index) LookupPlural(key string) (PluralEntry, bool) {
	i, ok := ix.pluralByKey[key]
	if !ok {
		return PluralEntry{}, false
	}
	return ix.Plural[i], true
}

// SimpleIDLimit returns one past the largest simple id, or 0 for an empty section.
func (ix *Index) SimpleIDLimit() int {
	return ix.maxSimpleID + 1
}

// PluralIDLimit returns one past the largest plural id, or 0 for an empty section.
func (ix *Index) PluralIDLimit() int {
	return ix.maxPluralID + 1
}

// Len returns the total number of entries in both sections.
func (ix *Index) Len() int {
	return len(ix.Simple) + len(ix.Plural)
}
