package resource

import (
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/dmitrymomot/lstrings/core/i18n"
)

type parser func(fsys fs.FS, name string) (map[string]string, error)

var parsers = map[string]parser{
	".strings": readWith(ParseStrings),
	".yaml":    readWith(ParseYAML),
	".yml":     readWith(ParseYAML),
	".json":    readWith(ParseYAML),
}

const lprojSuffix = ".lproj"

// Supported reports whether name has an extension LoadComponent can parse.
func Supported(name string) bool {
	_, ok := parsers[strings.ToLower(path.Ext(name))]
	return ok
}

// LoadComponent parses the resource at name and returns it as a component.
// The language code is derived from the path; opts are applied after the
// derived display name, so they may override it.
func LoadComponent(fsys fs.FS, name string, opts ...i18n.ComponentOption) (*i18n.Component, error) {
	lang, err := LanguageFromPath(name)
	if err != nil {
		return nil, err
	}
	entries, err := ReadTable(fsys, name)
	if err != nil {
		return nil, err
	}
	return newComponent(lang, entries, opts), nil
}

// LanguageFromPath derives the language code of a resource file from the
// nearest "xx.lproj" directory, or from the file name otherwise:
// "ru.strings" -> "ru", "pt_BR.yaml" -> "pt-BR", "de.lproj/Localizable.strings" -> "de".
// Names that are not valid BCP 47 tags, such as custom language packs, are
// returned unchanged.
func LanguageFromPath(name string) (string, error) {
	dir, file := path.Split(path.Clean(name))

	lang := strings.TrimSuffix(file, path.Ext(file))
	for _, elem := range slices.Backward(strings.Split(strings.Trim(dir, "/"), "/")) {
		if strings.HasSuffix(elem, lprojSuffix) {
			lang = strings.TrimSuffix(elem, lprojSuffix)
			break
		}
	}

	if lang == "" || lang == "." {
		return "", fmt.Errorf("%w: %s", ErrNoLanguage, name)
	}
	return canonicalLanguage(lang), nil
}

func canonicalLanguage(code string) string {
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return code
	}
	return tag.String()
}

func displayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return display.Self.Name(tag)
}

func newComponent(lang string, entries map[string]string, opts []i18n.ComponentOption) *i18n.Component {
	all := make([]i18n.ComponentOption, 0, len(opts)+1)
	if name := displayName(lang); name != "" {
		all = append(all, i18n.WithDisplayName(name))
	}
	return i18n.NewComponent(lang, entries, append(all, opts...)...)
}

// ReadTable parses the resource at name with the parser its extension selects.
func ReadTable(fsys fs.FS, name string) (map[string]string, error) {
	p, ok := parsers[strings.ToLower(path.Ext(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	return p(fsys, name)
}

func readWith(fn func(r io.Reader) (map[string]string, error)) parser {
	return func(fsys fs.FS, name string) (map[string]string, error) {
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open resource: %w", err)
		}
		defer f.Close()

		entries, err := fn(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return entries, nil
	}
}

// LoadDir loads every supported resource below dir. Files of the same
// language are merged in lexical path order, so a later table overrides keys
// of an earlier one.
func LoadDir(fsys fs.FS, dir string, opts ...i18n.ComponentOption) (*Bundle, error) {
	tables := make(map[string]map[string]string)

	err := fs.WalkDir(fsys, dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !Supported(name) {
			return nil
		}

		lang, err := LanguageFromPath(name)
		if err != nil {
			return err
		}
		entries, err := ReadTable(fsys, name)
		if err != nil {
			return err
		}

		if existing, ok := tables[lang]; ok {
			maps.Copy(existing, entries)
		} else {
			tables[lang] = entries
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load resources from %s: %w", dir, err)
	}

	components := make(map[string]*i18n.Component, len(tables))
	for lang, entries := range tables {
		components[lang] = newComponent(lang, entries, opts)
	}
	return NewBundle(components), nil
}
