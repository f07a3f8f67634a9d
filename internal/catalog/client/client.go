// Package client selects and builds the catalog provider from configuration
// and keeps one instance per process.
package client

import (
	"fmt"
	"log/slog"

	"github.com/harunnryd/skillmart/internal/catalog/client/internal/instance"
	"github.com/harunnryd/skillmart/internal/catalog/provider"
	"github.com/harunnryd/skillmart/internal/config"
	"github.com/harunnryd/skillmart/internal/store"
)

// Get returns the process-wide provider, building it from cfg on first use.
// Later calls return the same instance and ignore cfg. A nil cfg loads the
// defaults.
func Get(cfg *config.Config) (provider.Provider, error) {
	return instance.GetOrBuild(func() (provider.Provider, error) {
		if cfg == nil {
			loaded, err := config.Load(nil)
			if err != nil {
				return nil, fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
		}
		return New(cfg)
	})
}

// New builds a provider without touching the process-wide instance. Unknown
// kinds fall back to the JSON provider.
func New(cfg *config.Config) (provider.Provider, error) {
	kind := provider.Kind(cfg.Catalog.Provider)
	switch kind {
	case provider.KindJSON, "":
	default:
		slog.Warn("Unknown catalog provider, falling back to json",
			"provider", kind,
			"supported", []provider.Kind{provider.KindJSON},
		)
	}
	return newJSONProvider(cfg)
}

func newJSONProvider(cfg *config.Config) (*provider.JSONProvider, error) {
	ttl, err := config.DurationOrDefault(cfg.Catalog.CacheTTL, config.DefaultCatalogCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("catalog.cache_ttl: %w", err)
	}

	opts := []provider.Option{provider.WithCacheTTL(ttl)}

	if cfg.Catalog.IncludeSamples {
		samples, err := provider.SampleSkills()
		if err != nil {
			return nil, err
		}
		opts = append(opts, provider.WithSamples(samples))
	}

	if cfg.Catalog.WriteThrough {
		lockCfg, err := store.FileLockConfigFrom(cfg.Store)
		if err != nil {
			return nil, err
		}
		opts = append(opts, provider.WithWriteThrough(store.NewCatalogStore(cfg.Catalog.DataDir, lockCfg)))
	}

	slog.Debug("Catalog provider configured",
		"provider", provider.KindJSON,
		"data_dir", cfg.Catalog.DataDir,
		"cache_ttl", ttl,
		"samples", cfg.Catalog.IncludeSamples,
		"write_through", cfg.Catalog.WriteThrough,
	)

	return provider.NewJSONProvider(provider.NewFileSource(cfg.Catalog.DataDir), opts...), nil
}
