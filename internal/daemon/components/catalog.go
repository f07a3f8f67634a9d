package components

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/harunnryd/skillmart/internal/catalog/client"
	"github.com/harunnryd/skillmart/internal/catalog/provider"
	"github.com/harunnryd/skillmart/internal/config"
	"github.com/harunnryd/skillmart/internal/daemon"
)

const catalogHealthTimeout = 2 * time.Second

// CatalogComponent owns the process-wide catalog provider. Start warms the
// cache; a dataset that fails to load is reported through Health instead of
// aborting the daemon.
type CatalogComponent struct {
	cfg         *config.Config
	build       func(*config.Config) (provider.Provider, error)
	provider    provider.Provider
	initialized bool
	started     bool
	mu          sync.RWMutex
}

func NewCatalogComponent(cfg *config.Config) *CatalogComponent {
	return &CatalogComponent{
		cfg:   cfg,
		build: client.Get,
	}
}

// NewCatalogComponentWithProvider skips the process-wide client.
func NewCatalogComponentWithProvider(cfg *config.Config, p provider.Provider) *CatalogComponent {
	return &CatalogComponent{
		cfg: cfg,
		build: func(*config.Config) (provider.Provider, error) {
			return p, nil
		},
	}
}

func (c *CatalogComponent) Name() string {
	return "Catalog"
}

func (c *CatalogComponent) Dependencies() []string {
	return []string{}
}

func (c *CatalogComponent) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-ctx.Done():
		return fmt.Errorf("Catalog init cancelled: %w", ctx.Err())
	default:
	}

	p, err := c.build(c.cfg)
	if err != nil {
		return fmt.Errorf("build catalog provider: %w", err)
	}
	c.provider = p
	c.initialized = true

	slog.Info("Catalog initialized", "component", c.Name(), "provider", c.cfg.Catalog.Provider, "data_dir", c.cfg.Catalog.DataDir)
	return nil
}

func (c *CatalogComponent) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return fmt.Errorf("Catalog not initialized")
	}

	skills, err := c.provider.LoadSkills(ctx)
	if err != nil {
		slog.Warn("Catalog warm-up failed", "component", c.Name(), "error", err)
	} else {
		categories, catErr := c.provider.GetCategories(ctx)
		if catErr != nil {
			slog.Warn("Catalog warm-up failed", "component", c.Name(), "error", catErr)
		} else {
			slog.Info("Catalog warmed", "component", c.Name(), "skills", len(skills), "categories", len(categories))
		}
	}

	c.started = true
	return nil
}

func (c *CatalogComponent) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		slog.Info("Catalog not started, skipping stop", "component", c.Name())
		return nil
	}

	c.provider.ClearCache()
	c.started = false
	slog.Info("Catalog stopped", "component", c.Name())
	return nil
}

func (c *CatalogComponent) Health(ctx context.Context) (*daemon.ComponentHealth, error) {
	c.mu.RLock()
	p, initialized := c.provider, c.initialized
	c.mu.RUnlock()

	if !initialized {
		return &daemon.ComponentHealth{Name: c.Name(), Healthy: false, Error: fmt.Errorf("not initialized")}, nil
	}

	checkCtx, cancel := context.WithTimeout(ctx, catalogHealthTimeout)
	defer cancel()

	if _, err := p.GetSkillCount(checkCtx); err != nil {
		return &daemon.ComponentHealth{Name: c.Name(), Healthy: false, Error: err}, nil
	}
	if _, err := p.GetCategories(checkCtx); err != nil {
		return &daemon.ComponentHealth{Name: c.Name(), Healthy: false, Error: err}, nil
	}
	return &daemon.ComponentHealth{Name: c.Name(), Healthy: true}, nil
}

// Provider returns the built provider, or nil before Init.
func (c *CatalogComponent) Provider() provider.Provider {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.provider
}
