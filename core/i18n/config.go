package i18n

// Config holds environment overrides for building Strings instances.
type Config struct {
	// FallbackLanguage names the component used as the last lookup stage.
	FallbackLanguage string `env:"LSTRINGS_FALLBACK_LANGUAGE" envDefault:"en"`

	// GroupingSeparator overrides the locale's thousands separator when set.
	GroupingSeparator string `env:"LSTRINGS_GROUPING_SEPARATOR"`
}
