// Package resource loads translation tables from files into i18n components.
//
// Supported formats are Apple .strings files (UTF-8 or UTF-16 with a byte
// order mark) and nested YAML or JSON maps, which are flattened to dot keys.
// The language of a file comes from its name ("ru.strings", "pt_BR.yaml") or
// from an enclosing "xx.lproj" directory.
//
//	bundle, err := resource.LoadDir(os.DirFS("locales"), ".")
//	if err != nil {
//		return err
//	}
//	lang := bundle.Match(r.Header.Get("Accept-Language"))
//	s, err := bundle.Strings(lang)
package resource
