package catalog

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/lstrings/core/config"
	"github.com/dmitrymomot/lstrings/core/logger"
)

// Config holds the location of the process-wide catalog blob.
type Config struct {
	Path string `env:"LSTRINGS_CATALOG_PATH" envDefault:"catalog.bin"`
}

// Loader returns the raw (possibly compressed) catalog blob.
type Loader func() ([]byte, error)

// FromFile reads the blob from a file on disk.
func FromFile(path string) Loader {
	return func() ([]byte, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
		}
		return data, nil
	}
}

// FromFS reads the blob from fsys, typically an embed.FS bundled with the binary.
func FromFS(fsys fs.FS, path string) Loader {
	return func() ([]byte, error) {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
		}
		return data, nil
	}
}

// FromReader reads the blob from r on first load.
func FromReader(r io.Reader) Loader {
	return func() ([]byte, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		return data, nil
	}
}

// FromBytes serves an in-memory blob.
func FromBytes(data []byte) Loader {
	return func() ([]byte, error) {
		return data, nil
	}
}

// Registry loads a catalog at most once and shares the result.
// Concurrent callers of Index block until the first load completes.
type Registry struct {
	load Loader
	log  *slog.Logger

	once  sync.Once
	index *Index
	err   error
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used to report the load. Defaults to slog.Default().
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry creates a Registry that will call load on first use.
func NewRegistry(load Loader, opts ...RegistryOption) *Registry {
	r := &Registry{load: load}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	return r
}

// Index returns the loaded catalog, loading it on the first call.
// A failed load is cached too; the registry never retries.
func (r *Registry) Index() (*Index, error) {
	r.once.Do(r.init)
	return r.index, r.err
}

// MustIndex is like Index but panics if the catalog cannot be loaded.
func (r *Registry) MustIndex() *Index {
	ix, err := r.Index()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return ix
}

func (r *Registry) init() {
	if r.load == nil {
		r.err = ErrNoLoader
		return
	}

	start := time.Now()

	data, err := r.load()
	if err != nil {
		r.err = err
		r.log.Error("Failed to read catalog", logger.Component("catalog"), logger.Error(err))
		return
	}

	ix, err := Open(data)
	if err != nil {
		r.err = fmt.Errorf("failed to decode catalog: %w", err)
		r.log.Error("Failed to decode catalog", logger.Component("catalog"), logger.Error(err))
		return
	}

	r.index = ix
	r.log.Info("Catalog loaded",
		logger.Component("catalog"),
		logger.Compression(string(Detect(data))),
		logger.Size(len(data)),
		logger.Entries(len(ix.Simple), len(ix.Plural)),
		logger.Elapsed(start),
	)
}

var defaultRegistry atomic.Pointer[Registry]

// SetDefault installs the process-wide registry. It only has an effect before
// the first call to Default; later calls keep the registry already in use.
func SetDefault(r *Registry) bool {
	return defaultRegistry.CompareAndSwap(nil, r)
}

// SetBundle installs a process-wide registry reading path from fsys.
func SetBundle(fsys fs.FS, path string) bool {
	return SetDefault(NewRegistry(FromFS(fsys, path)))
}

// Default returns the process-wide catalog, loading it on first use.
// Without SetDefault the blob is read from Config.Path. It panics if the
// catalog cannot be loaded.
func Default() *Index {
	r := defaultRegistry.Load()
	if r == nil {
		var cfg Config
		config.MustLoad(&cfg)
		defaultRegistry.CompareAndSwap(nil, NewRegistry(FromFile(cfg.Path)))
		r = defaultRegistry.Load()
	}
	return r.MustIndex()
}
