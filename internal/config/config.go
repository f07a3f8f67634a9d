package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/harunnryd/skillmart/internal/pathutil"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

const EnvPrefix = "SKILLMART_"

type Config struct {
	Env     string        `koanf:"env" yaml:"env"`
	Server  ServerConfig  `koanf:"server" yaml:"server"`
	Catalog CatalogConfig `koanf:"catalog" yaml:"catalog"`
	Store   StoreConfig   `koanf:"store" yaml:"store"`
	Daemon  DaemonConfig  `koanf:"daemon" yaml:"daemon"`
}

type ServerConfig struct {
	Host            string   `koanf:"host" yaml:"host"`
	Port            int      `koanf:"port" yaml:"port"`
	LogLevel        string   `koanf:"log_level" yaml:"log_level"`
	ReadTimeout     string   `koanf:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    string   `koanf:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     string   `koanf:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout string   `koanf:"shutdown_timeout" yaml:"shutdown_timeout"`
	CORSOrigins     []string `koanf:"cors_origins" yaml:"cors_origins"`
}

type CatalogConfig struct {
	Provider       string `koanf:"provider" yaml:"provider"`
	DataDir        string `koanf:"data_dir" yaml:"data_dir"`
	CacheTTL       string `koanf:"cache_ttl" yaml:"cache_ttl"`
	IncludeSamples bool   `koanf:"include_samples" yaml:"include_samples"`
	WriteThrough   bool   `koanf:"write_through" yaml:"write_through"`
}

type StoreConfig struct {
	LockTimeout string `koanf:"lock_timeout" yaml:"lock_timeout"`
	LockRetry   string `koanf:"lock_retry" yaml:"lock_retry"`
}

type DaemonConfig struct {
	ShutdownTimeout        string `koanf:"shutdown_timeout" yaml:"shutdown_timeout"`
	HealthCheckInterval    string `koanf:"health_check_interval" yaml:"health_check_interval"`
	StartupShutdownTimeout string `koanf:"startup_shutdown_timeout" yaml:"startup_shutdown_timeout"`
}

const (
	EnvProduction                       = "production"
	EnvDevelopment                      = "development"
	DefaultServerHost                   = "127.0.0.1"
	DefaultServerPort                   = 8080
	DefaultServerLogLevel               = "info"
	DefaultServerReadTimeout            = "10s"
	DefaultServerWriteTimeout           = "10s"
	DefaultServerIdleTimeout            = "60s"
	DefaultServerShutdownTimeout        = "5s"
	DefaultCatalogProvider              = "json"
	DefaultCatalogCacheTTL              = "1m"
	DefaultCatalogWriteThrough          = false
	DefaultStoreLockTimeout             = "5s"
	DefaultStoreLockRetry               = "50ms"
	DefaultDaemonShutdownTimeout        = "30s"
	DefaultDaemonHealthCheckInterval    = "30s"
	DefaultDaemonStartupShutdownTimeout = "10s"
)

// DefaultDataDir is where skills.json and categories.json live unless
// catalog.data_dir says otherwise.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, "skillmart")
}

// DefaultConfigPath is the global config file read when --config is not set.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".skillmart", "config.yaml"), nil
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	environment := strings.TrimSpace(os.Getenv(EnvPrefix + "ENV"))
	if environment == "" {
		environment = EnvDevelopment
	}

	defaults := map[string]interface{}{
		"env":                             environment,
		"server.host":                     DefaultServerHost,
		"server.port":                     DefaultServerPort,
		"server.log_level":                DefaultServerLogLevel,
		"server.read_timeout":             DefaultServerReadTimeout,
		"server.write_timeout":            DefaultServerWriteTimeout,
		"server.idle_timeout":             DefaultServerIdleTimeout,
		"server.shutdown_timeout":         DefaultServerShutdownTimeout,
		"server.cors_origins":             []string{"*"},
		"catalog.provider":                DefaultCatalogProvider,
		"catalog.data_dir":                DefaultDataDir(),
		"catalog.cache_ttl":               DefaultCatalogCacheTTL,
		"catalog.write_through":           DefaultCatalogWriteThrough,
		"store.lock_timeout":              DefaultStoreLockTimeout,
		"store.lock_retry":                DefaultStoreLockRetry,
		"daemon.shutdown_timeout":         DefaultDaemonShutdownTimeout,
		"daemon.health_check_interval":    DefaultDaemonHealthCheckInterval,
		"daemon.startup_shutdown_timeout": DefaultDaemonStartupShutdownTimeout,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	configPath := ""
	if cmd != nil {
		if flag := cmd.Flags().Lookup("config"); flag != nil {
			configPath = strings.TrimSpace(flag.Value.String())
		}
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
	} else if globalPath, err := DefaultConfigPath(); err == nil {
		if err := k.Load(file.Provider(globalPath), yaml.Parser()); err != nil {
			slog.Debug("Global config not found or invalid", "path", globalPath, "error", err)
		}
	}

	// SKILLMART_CATALOG_CACHE_TTL -> catalog.cache_ttl: only the first
	// underscore separates section from key. Empty variables are skipped.
	k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return strings.Replace(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "_", ".", 1), value
	}), nil)

	if cmd != nil {
		k.Load(posflag.Provider(cmd.Flags(), ".", k), nil)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = environment
	}
	// Samples follow the resolved env unless a layer sets them explicitly.
	if !k.Exists("catalog.include_samples") {
		cfg.Catalog.IncludeSamples = !cfg.IsProduction()
	}
	cfg.Catalog.Provider = strings.ToLower(strings.TrimSpace(cfg.Catalog.Provider))
	if err := normalizePathFields(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// IsProduction reports whether the process runs in production posture.
func (c *Config) IsProduction() bool {
	return c != nil && strings.EqualFold(c.Env, EnvProduction)
}

func normalizePathFields(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	dataDir, err := expandConfiguredPath(cfg.Catalog.DataDir)
	if err != nil {
		return err
	}
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}
	cfg.Catalog.DataDir = dataDir

	return nil
}

func expandConfiguredPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	expanded, err := pathutil.Expand(trimmed)
	if err != nil {
		return "", err
	}
	return expanded, nil
}
