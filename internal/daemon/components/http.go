package components

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/harunnryd/skillmart/internal/api"
	"github.com/harunnryd/skillmart/internal/concurrency"
	"github.com/harunnryd/skillmart/internal/config"
	"github.com/harunnryd/skillmart/internal/daemon"
)

type HTTPServerComponent struct {
	daemon      *daemon.Daemon
	cfg         *config.ServerConfig
	catalog     *CatalogComponent
	server      *http.Server
	listener    net.Listener
	shutdownTTL time.Duration
	initialized bool
	started     bool
	mu          sync.RWMutex
	startTime   time.Time
}

func NewHTTPServerComponent(d *daemon.Daemon, cfg *config.ServerConfig, catalog *CatalogComponent) *HTTPServerComponent {
	return &HTTPServerComponent{
		daemon:  d,
		cfg:     cfg,
		catalog: catalog,
	}
}

func (h *HTTPServerComponent) Name() string {
	return "HTTPServer"
}

func (h *HTTPServerComponent) Dependencies() []string {
	return []string{h.catalog.Name()}
}

func (h *HTTPServerComponent) Init(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	p := h.catalog.Provider()
	if p == nil {
		return fmt.Errorf("catalog provider not initialized")
	}

	readTimeout, err := config.DurationOrDefault(h.cfg.ReadTimeout, config.DefaultServerReadTimeout)
	if err != nil {
		return fmt.Errorf("parse server read timeout: %w", err)
	}
	writeTimeout, err := config.DurationOrDefault(h.cfg.WriteTimeout, config.DefaultServerWriteTimeout)
	if err != nil {
		return fmt.Errorf("parse server write timeout: %w", err)
	}
	idleTimeout, err := config.DurationOrDefault(h.cfg.IdleTimeout, config.DefaultServerIdleTimeout)
	if err != nil {
		return fmt.Errorf("parse server idle timeout: %w", err)
	}
	shutdownTimeout, err := config.DurationOrDefault(h.cfg.ShutdownTimeout, config.DefaultServerShutdownTimeout)
	if err != nil {
		return fmt.Errorf("parse server shutdown timeout: %w", err)
	}

	handler := api.NewServer(p, api.Options{
		CORSOrigins: h.cfg.CORSOrigins,
		Health:      h.componentStatuses,
	})

	h.server = &http.Server{
		Addr:         net.JoinHostPort(h.cfg.Host, strconv.Itoa(h.cfg.Port)),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	h.shutdownTTL = shutdownTimeout

	h.initialized = true
	slog.Info("HTTPServer initialized", "component", h.Name(), "addr", h.server.Addr)
	return nil
}

func (h *HTTPServerComponent) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.initialized {
		return fmt.Errorf("HTTPServer not initialized")
	}

	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", h.server.Addr, err)
	}
	h.listener = ln

	server := h.server
	var onPanic func(interface{})
	if h.daemon != nil {
		onPanic = h.daemon.ReportPanic
	}
	concurrency.SafeGo(h.Name(), func() {
		slog.Info("HTTP server listening", "component", h.Name(), "addr", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "component", h.Name(), "error", err)
		}
	}, onPanic)

	h.started = true
	h.startTime = time.Now()
	slog.Info("HTTPServer started", "component", h.Name())
	return nil
}

func (h *HTTPServerComponent) Stop(ctx context.Context) error {
	h.mu.Lock()
	if !h.started {
		h.mu.Unlock()
		slog.Info("HTTPServer not started, skipping stop", "component", h.Name())
		return nil
	}
	server, uptime := h.server, time.Since(h.startTime)
	h.started = false
	h.mu.Unlock()

	// In-flight /health requests read component health, so the lock is
	// released before waiting on them.
	slog.Info("Stopping HTTPServer...", "component", h.Name(), "uptime", uptime)
	shutdownCtx, cancel := context.WithTimeout(ctx, h.shutdownTTL)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTPServer shutdown error", "component", h.Name(), "error", err)
		return err
	}

	slog.Info("HTTPServer stopped", "component", h.Name())
	return nil
}

func (h *HTTPServerComponent) Health(ctx context.Context) (*daemon.ComponentHealth, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.initialized {
		return &daemon.ComponentHealth{
			Name:    h.Name(),
			Healthy: false,
			Error:   fmt.Errorf("not initialized"),
		}, nil
	}

	if !h.started {
		return &daemon.ComponentHealth{
			Name:    h.Name(),
			Healthy: false,
			Error:   fmt.Errorf("not started"),
		}, nil
	}

	return &daemon.ComponentHealth{
		Name:    h.Name(),
		Healthy: true,
	}, nil
}

// Addr is the bound listener address once started, which resolves port 0.
func (h *HTTPServerComponent) Addr() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.listener != nil {
		return h.listener.Addr().String()
	}
	if h.server != nil {
		return h.server.Addr
	}
	return ""
}

func (h *HTTPServerComponent) componentStatuses(ctx context.Context) map[string]api.ComponentStatus {
	if h.daemon == nil {
		return nil
	}

	out := make(map[string]api.ComponentStatus)
	for name, ch := range h.daemon.ComponentHealth() {
		if name == h.Name() {
			continue
		}
		out[name] = api.ComponentStatus{Healthy: ch.Healthy, Error: ch.ErrorString()}
	}
	return out
}
