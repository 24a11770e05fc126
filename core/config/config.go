package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> loaded value
)

// Load populates cfg from environment variables using its `env` struct tags.
// The first successful load of a type is cached; later calls copy the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config target cannot be nil")
	}

	// A missing .env file is the normal case outside development.
	dotenvOnce.Do(func() { _ = godotenv.Load() })

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("failed to load %s config: %w", typ, err)
	}

	actual, _ := cache.LoadOrStore(typ, loaded)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
