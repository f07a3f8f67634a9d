package daemon

import (
	"context"
)

type HealthStatus string

const (
	StatusStarting HealthStatus = "starting"
	StatusRunning  HealthStatus = "running"
	StatusStopping HealthStatus = "stopping"
	StatusStopped  HealthStatus = "stopped"
)

type ComponentHealth struct {
	Name    string
	Healthy bool
	Error   error
}

// ErrorString returns the health error text, or "" when there is none.
func (h *ComponentHealth) ErrorString() string {
	if h == nil || h.Error == nil {
		return ""
	}
	return h.Error.Error()
}

// Component is a unit the daemon initializes in dependency order, starts in
// registration order and stops in reverse.
type Component interface {
	Name() string
	Dependencies() []string
	Init(ctx context.Context) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Health(ctx context.Context) (*ComponentHealth, error)
}
