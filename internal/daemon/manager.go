package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/harunnryd/skillmart/internal/config"
)

// Daemon runs the catalog components: Init and Start follow dependency
// order, Stop runs in reverse of that order.
type Daemon struct {
	cfg     *config.Config
	dataDir string

	mu         sync.RWMutex
	components []Component
	health     HealthStatus
}

func NewDaemon(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Catalog.DataDir == "" {
		return nil, fmt.Errorf("catalog data dir cannot be empty")
	}

	return &Daemon{
		cfg:     cfg,
		dataDir: cfg.Catalog.DataDir,
		health:  StatusStarting,
	}, nil
}

// AddComponent registers comp. A second component with the same name is
// ignored.
func (d *Daemon) AddComponent(comp Component) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.components {
		if existing.Name() == comp.Name() {
			slog.Warn("Component already registered, ignoring", "component", comp.Name())
			return
		}
	}
	d.components = append(d.components, comp)
	slog.Debug("Component registered", "component", comp.Name(), "total_components", len(d.components))
}

// Start brings every component up and blocks until ctx is cancelled or the
// process receives SIGINT/SIGTERM. It always returns a non-nil error: the
// context error after a clean shutdown, or what went wrong.
func (d *Daemon) Start(ctx context.Context) error {
	slog.Info("Skillmart daemon starting", "data_dir", d.dataDir)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := d.validateConfig(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	plan, err := d.plan()
	if err != nil {
		d.setHealth(StatusStopped)
		return fmt.Errorf("component initialization failed: %w", err)
	}

	if attempted, err := d.initAll(ctx, plan); err != nil {
		d.stopAll(context.Background(), attempted, d.timeout(d.cfg.Daemon.StartupShutdownTimeout, config.DefaultDaemonStartupShutdownTimeout))
		return fmt.Errorf("component initialization failed: %w", err)
	}

	if err := d.startAll(ctx, plan); err != nil {
		d.stopAll(context.Background(), plan, d.timeout(d.cfg.Daemon.StartupShutdownTimeout, config.DefaultDaemonStartupShutdownTimeout))
		return fmt.Errorf("component startup failed: %w", err)
	}

	d.setHealth(StatusRunning)
	slog.Info("Skillmart daemon is running", "addr", d.addr(), "components", len(plan))

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	go d.monitor(monitorCtx, d.timeout(d.cfg.Daemon.HealthCheckInterval, config.DefaultDaemonHealthCheckInterval))

	<-ctx.Done()
	stopMonitor()

	slog.Info("Shutting down", "reason", ctx.Err())
	d.setHealth(StatusStopping)
	if err := d.stopAll(context.Background(), plan, d.timeout(d.cfg.Daemon.ShutdownTimeout, config.DefaultDaemonShutdownTimeout)); err != nil {
		return err
	}
	return ctx.Err()
}

func (d *Daemon) Health() HealthStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.health
}

// ComponentHealth asks every component for its health. A component that
// returns an error is reported unhealthy even without a result.
func (d *Daemon) ComponentHealth() map[string]*ComponentHealth {
	d.mu.RLock()
	components := append([]Component(nil), d.components...)
	d.mu.RUnlock()

	result := make(map[string]*ComponentHealth, len(components))
	for _, comp := range components {
		health, err := comp.Health(context.Background())
		if health == nil {
			health = &ComponentHealth{Name: comp.Name()}
		}
		if err != nil {
			health.Healthy = false
			health.Error = err
		}
		result[comp.Name()] = health
	}
	return result
}

// ReportPanic records a panic recovered in a component goroutine.
func (d *Daemon) ReportPanic(value interface{}) {
	slog.Error("Panic detected in daemon", "panic", value)
	d.setHealth(StatusStopped)
}

func (d *Daemon) setHealth(status HealthStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.health = status
}

func (d *Daemon) validateConfig() error {
	if d.cfg.Server.Port < 1 || d.cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be 1-65535)", d.cfg.Server.Port)
	}

	for name, value := range map[string]string{
		"catalog.cache_ttl":            d.cfg.Catalog.CacheTTL,
		"daemon.shutdown_timeout":      d.cfg.Daemon.ShutdownTimeout,
		"daemon.health_check_interval": d.cfg.Daemon.HealthCheckInterval,
		"server.shutdown_timeout":      d.cfg.Server.ShutdownTimeout,
		"store.lock_timeout":           d.cfg.Store.LockTimeout,
	} {
		if _, err := config.DurationOrDefault(value, "0s"); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	info, err := os.Stat(d.dataDir)
	switch {
	case os.IsNotExist(err):
		slog.Warn("Catalog data directory does not exist; run 'skillmart config init' to create it", "data_dir", d.dataDir)
	case err != nil:
		return fmt.Errorf("stat data directory: %w", err)
	case !info.IsDir():
		return fmt.Errorf("data directory %s is not a directory", d.dataDir)
	}

	slog.Debug("Configuration validated", "data_dir", d.dataDir, "port", d.cfg.Server.Port)
	return nil
}

func (d *Daemon) addr() string {
	return fmt.Sprintf("%s:%d", d.cfg.Server.Host, d.cfg.Server.Port)
}

// timeout parses a duration field that validateConfig already checked.
func (d *Daemon) timeout(value, fallback string) time.Duration {
	dur, err := config.DurationOrDefault(value, fallback)
	if err != nil {
		dur, _ = config.DurationOrDefault("", fallback)
	}
	return dur
}

// plan orders the components so each one comes after its dependencies.
// Registration order breaks ties.
func (d *Daemon) plan() ([]Component, error) {
	d.mu.RLock()
	components := append([]Component(nil), d.components...)
	d.mu.RUnlock()

	byName := make(map[string]Component, len(components))
	for _, comp := range components {
		byName[comp.Name()] = comp
	}

	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int, len(components))
	order := make([]Component, 0, len(components))

	var visit func(comp Component) error
	visit = func(comp Component) error {
		switch state[comp.Name()] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("circular dependency detected involving %s", comp.Name())
		}

		state[comp.Name()] = visiting
		for _, dep := range comp.Dependencies() {
			next, ok := byName[dep]
			if !ok {
				return fmt.Errorf("component %s depends on %s which is not registered", comp.Name(), dep)
			}
			if err := visit(next); err != nil {
				return err
			}
		}
		state[comp.Name()] = done
		order = append(order, comp)
		return nil
	}

	for _, comp := range components {
		if err := visit(comp); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// initAll returns the components it called Init on, including a failing one.
func (d *Daemon) initAll(ctx context.Context, plan []Component) ([]Component, error) {
	for i, comp := range plan {
		if err := comp.Init(ctx); err != nil {
			slog.Error("Component initialization failed", "component", comp.Name(), "error", err)
			return plan[:i+1], fmt.Errorf("component %s init failed: %w", comp.Name(), err)
		}
		slog.Debug("Component initialized", "component", comp.Name())
	}
	return plan, nil
}

func (d *Daemon) startAll(ctx context.Context, plan []Component) error {
	for _, comp := range plan {
		if err := comp.Start(ctx); err != nil {
			slog.Error("Component startup failed", "component", comp.Name(), "error", err)
			return fmt.Errorf("component %s startup failed: %w", comp.Name(), err)
		}
		slog.Info("Component started", "component", comp.Name())
	}
	return nil
}

// stopAll stops comps in reverse order within timeout. Stop errors are
// logged and do not halt the remaining components.
func (d *Daemon) stopAll(ctx context.Context, comps []Component, timeout time.Duration) error {
	stopCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := len(comps) - 1; i >= 0; i-- {
			comp := comps[i]
			if err := comp.Stop(stopCtx); err != nil {
				slog.Error("Component stop failed", "component", comp.Name(), "error", err)
				continue
			}
			slog.Info("Component stopped", "component", comp.Name())
		}
	}()

	defer d.setHealth(StatusStopped)
	select {
	case <-done:
		return nil
	case <-stopCtx.Done():
		slog.Error("Shutdown timeout exceeded", "timeout", timeout)
		return fmt.Errorf("shutdown timeout after %v", timeout)
	}
}

// monitor is disabled by a non-positive interval.
func (d *Daemon) monitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	healthy := make(map[string]bool)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			healthy = d.sweep(healthy)
		}
	}
}

// sweep logs components whose health changed since the previous sweep and
// returns the current view. Components missing from prev count as healthy.
func (d *Daemon) sweep(prev map[string]bool) map[string]bool {
	current := make(map[string]bool)
	for name, h := range d.ComponentHealth() {
		current[name] = h.Healthy
		was, seen := prev[name]
		if !seen {
			was = true
		}
		switch {
		case was && !h.Healthy:
			slog.Warn("Component unhealthy", "component", name, "error", h.ErrorString())
		case !was && h.Healthy:
			slog.Info("Component recovered", "component", name)
		}
	}
	return current
}
