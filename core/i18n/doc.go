// Package i18n resolves localized strings through a chain of language
// components and selects CLDR plural categories by locale.
//
// A Component is the key -> template table of one language resource. A
// Strings instance composes a primary component, an optional secondary one
// (for example the base language of a custom language pack) and a fallback
// that is always present. Instances are immutable and safe for concurrent
// use; build a new one when the active locale changes and publish it through
// a Holder.
//
// # Basic Usage
//
//	ru := i18n.NewComponent("ru", map[string]string{
//		"Chat.Title":          "Чаты",
//		"Chat.Members_1":      "%d участник",
//		"Chat.Members_3_10":   "%d участника",
//		"Chat.Members_many":   "%d участников",
//		"Chat.Members_any":    "%d участника",
//	})
//	en := i18n.NewComponent("en", map[string]string{
//		"Chat.Title":        "Chats",
//		"Chat.Search":       "Search",
//	})
//
//	s, err := i18n.NewStrings(ru, i18n.WithFallback(en))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s.Resolve("Chat.Title")   // "Чаты"
//	s.Resolve("Chat.Search")  // "Search" (from the fallback)
//	s.Resolve("Chat.Missing") // "Chat.Missing"
//
// A key that no component has resolves to itself, so missing translations
// show up verbatim in the UI instead of as empty text.
//
// # Pluralization
//
// Plural templates are stored under the base key plus a category suffix:
//
//	_0     zero
//	_1     one
//	_2     two
//	_3_10  few
//	_many  many
//	_any   other
//
// The category comes from the plural rules of the primary component's
// language, reduced to its base ("pt_BR" -> "pt") and packed into a numeric
// locale code. A missing category falls back to the "_any" template, then to
// the key itself:
//
//	s.PluralString(1, "Chat.Members")    // "1 участник"
//	s.PluralString(3, "Chat.Members")    // "3 участника"
//	s.PluralString(1025, "Chat.Members") // "1 025 участников"
//
// PluralString passes the quantity, grouped with the locale's thousands
// separator, as the only argument. PluralFormatted uses the quantity to pick
// the category and substitutes exactly the caller's arguments:
//
//	s.PluralFormatted(3, "Chat.Forwarded", "Ann", s.FormatQuantity(3)) // "Ann and 3 others"
//
// # Catalog Index
//
// WithIndex pre-expands every entry of a catalog.Index: simple templates with
// their placeholder ranges, and six plural slots per plural id addressed as
// id*6 + category. Generated accessors then call Get, Formatted and Plural by id.
package i18n
