// Command lstrings builds the binary key catalog from a base-language
// resource file.
//
//	lstrings -in en.lproj/Localizable.strings -out catalog.bin -compress zstd
//
// Plural variants (Key_1, Key_3_10, Key_any, ...) are grouped into a single
// plural entry; every other key becomes a simple entry. Ids are assigned in
// sorted key order within each section.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrymomot/lstrings/core/catalog"
	"github.com/dmitrymomot/lstrings/core/config"
	"github.com/dmitrymomot/lstrings/core/logger"
	"github.com/dmitrymomot/lstrings/core/resource"
)

func main() {
	log := logger.New(logger.WithOutput(os.Stderr), logger.WithAttr(logger.Component("lstrings")))

	if err := run(os.Args[1:], os.Stderr, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Error("catalog build failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(args []string, usage io.Writer, log *slog.Logger) error {
	var cfg catalog.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	fs := flag.NewFlagSet("lstrings", flag.ContinueOnError)
	fs.SetOutput(usage)
	in := fs.String("in", "", "base-language resource (.strings, .yaml, .yml or .json)")
	out := fs.String("out", cfg.Path, "catalog output path")
	compress := fs.String("compress", string(catalog.CompressionNone), "blob compression: none, gzip or zstd")
	start := fs.Int("start", 0, "first id of each section")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" {
		return errors.New("missing -in resource path")
	}
	if *start < 0 || *start > catalog.MaxID {
		return fmt.Errorf("-start must be within [0, %d]", catalog.MaxID)
	}
	c, err := catalog.ParseCompression(*compress)
	if err != nil {
		return err
	}

	began := time.Now()

	entries, err := resource.ReadTable(os.DirFS(filepath.Dir(*in)), filepath.Base(*in))
	if err != nil {
		return err
	}

	ix, err := buildIndex(entries, *start)
	if err != nil {
		return err
	}

	data, err := catalog.EncodeCompressed(ix, c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	log.Info("catalog written",
		logger.Path(*out),
		logger.Entries(len(ix.Simple), len(ix.Plural)),
		logger.Size(len(data)),
		logger.Compression(string(c)),
		logger.Elapsed(began),
	)
	return nil
}
