package store

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/harunnryd/skillmart/internal/config"
	skerrors "github.com/harunnryd/skillmart/internal/errors"

	"github.com/gofrs/flock"
)

const LockFile = "catalog.lock"

// FileLock serializes writers of one data directory across processes.
type FileLock struct {
	fileLock   *flock.Flock
	lockPath   string
	acquiredAt time.Time
	mu         sync.RWMutex
}

type FileLockConfig struct {
	LockTimeout time.Duration
	LockRetry   time.Duration
}

func DefaultFileLockConfig() *FileLockConfig {
	lockTimeout, _ := config.DurationOrDefault(config.DefaultStoreLockTimeout, config.DefaultStoreLockTimeout)
	lockRetry, _ := config.DurationOrDefault(config.DefaultStoreLockRetry, config.DefaultStoreLockRetry)

	return &FileLockConfig{
		LockTimeout: lockTimeout,
		LockRetry:   lockRetry,
	}
}

// FileLockConfigFrom reads lock timings from the store section, falling back
// to defaults for empty values.
func FileLockConfigFrom(cfg config.StoreConfig) (*FileLockConfig, error) {
	lockTimeout, err := config.DurationOrDefault(cfg.LockTimeout, config.DefaultStoreLockTimeout)
	if err != nil {
		return nil, fmt.Errorf("store.lock_timeout: %w", err)
	}
	lockRetry, err := config.DurationOrDefault(cfg.LockRetry, config.DefaultStoreLockRetry)
	if err != nil {
		return nil, fmt.Errorf("store.lock_retry: %w", err)
	}
	return &FileLockConfig{LockTimeout: lockTimeout, LockRetry: lockRetry}, nil
}

func NewFileLock(ctx context.Context, dir string, cfg *FileLockConfig) (*FileLock, error) {
	if cfg == nil {
		cfg = DefaultFileLockConfig()
	}

	lockPath := filepath.Join(dir, LockFile)
	fl := &FileLock{
		fileLock: flock.New(lockPath),
		lockPath: lockPath,
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.LockTimeout)
	defer cancel()

	retry := cfg.LockRetry
	if retry <= 0 {
		retry = 10 * time.Millisecond
	}

	locked, err := fl.fileLock.TryLockContext(ctx, retry)
	if err != nil && ctx.Err() == nil {
		return nil, fmt.Errorf("failed to attempt lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("catalog %s is locked by another writer (timeout after %v): %w",
			dir, cfg.LockTimeout, skerrors.ErrConflict)
	}

	fl.acquiredAt = time.Now()
	slog.Debug("File lock acquired", "path", lockPath)

	return fl, nil
}

func (fl *FileLock) Unlock() {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.fileLock == nil {
		slog.Warn("FileLock already unlocked", "path", fl.lockPath)
		return
	}

	if err := fl.fileLock.Unlock(); err != nil {
		slog.Error("Failed to release file lock",
			"path", fl.lockPath,
			"error", err,
		)
	} else {
		slog.Debug("File lock released",
			"path", fl.lockPath,
			"held_duration_ms", time.Since(fl.acquiredAt).Milliseconds(),
		)
	}

	fl.fileLock = nil
}

func (fl *FileLock) IsLocked() bool {
	fl.mu.RLock()
	defer fl.mu.RUnlock()
	return fl.fileLock != nil
}

func (fl *FileLock) HeldDuration() time.Duration {
	fl.mu.RLock()
	defer fl.mu.RUnlock()
	if fl.acquiredAt.IsZero() {
		return 0
	}
	return time.Since(fl.acquiredAt)
}
