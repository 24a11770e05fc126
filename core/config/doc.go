// Package config fills configuration structs from environment variables.
//
// Fields are bound with caarlos0/env struct tags. On the first call a .env
// file in the working directory is applied to the environment if present.
// The first successful load of each struct type is remembered, so every
// package reading catalog.Config or i18n.Config sees the same values for the
// life of the process:
//
//	var cfg catalog.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	ix, err := catalog.NewRegistry(catalog.FromFile(cfg.Path)).Index()
//
// MustLoad panics instead of returning the error and suits program start-up.
//
// Variables read by this module:
//
//	LSTRINGS_CATALOG_PATH        catalog blob read by catalog.Default (catalog.bin)
//	LSTRINGS_FALLBACK_LANGUAGE   last stage of resource.Bundle chains (en)
//	LSTRINGS_GROUPING_SEPARATOR  overrides the locale's thousands separator
package config
