package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variables overriding the config files.
const (
	EnvAPIURL   = "PRODIFY_API_URL"
	EnvAPIToken = "PRODIFY_API_TOKEN"
)

// Defaults
const (
	DefaultBaseURL          = "http://localhost:8081/api"
	DefaultTimeout          = 10 * time.Second
	DefaultSkipIncrement    = 5 * time.Second
	DefaultPositionInterval = 250 * time.Millisecond
	DefaultSearchDebounce   = 500 * time.Millisecond
	DefaultMaxDownloadMB    = 64
)

type Config struct {
	Icons   string `koanf:"icons"`   // "nerd", "unicode", or "none"
	Catalog string `koanf:"catalog"` // JSON file browsed instead of the API

	API    APIConfig    `koanf:"api"`
	Player PlayerConfig `koanf:"player"`
	Search SearchConfig `koanf:"search"`
	Log    LogConfig    `koanf:"log"`
}

// APIConfig holds the catalog API settings.
type APIConfig struct {
	BaseURL string        `koanf:"base_url"`
	Token   string        `koanf:"token"`   // bearer token, sent when set
	Timeout time.Duration `koanf:"timeout"` // per request, e.g. "10s"
}

// PlayerConfig holds audio preview settings.
type PlayerConfig struct {
	Volume           *float64      `koanf:"volume"`            // initial volume when none was saved (0.0-1.0)
	SkipIncrement    time.Duration `koanf:"skip_increment"`    // seek step (default: 5s)
	PositionInterval time.Duration `koanf:"position_interval"` // position refresh while playing (default: 250ms)
	MaxDownloadMB    int           `koanf:"max_download_mb"`   // preview download limit (default: 64)
}

// SearchConfig holds search box settings.
type SearchConfig struct {
	Debounce time.Duration `koanf:"debounce"` // delay before a query is sent (default: 500ms)
}

// LogConfig holds log file settings.
type LogConfig struct {
	Level      string `koanf:"level"`       // "debug", "info", "warn", "error" (default: "info")
	File       string `koanf:"file"`        // default: $XDG_STATE_HOME/prodify/prodify.log
	MaxSize    int    `koanf:"max_size"`    // megabytes before rotation (default: 10)
	MaxBackups int    `koanf:"max_backups"` // rotated files kept (default: 3)
	MaxAge     int    `koanf:"max_age"`     // days (default: 28)
	Compress   *bool  `koanf:"compress"`    // gzip rotated files (default: true)
}

// Load reads .env, the config files and the environment overrides.
func Load() (*Config, error) {
	// A missing .env file is not an error; existing variables are not overridden.
	_ = godotenv.Load()

	cfg, err := loadFiles(getConfigPaths())
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

func loadFiles(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.API.BaseURL = strings.TrimSuffix(cfg.API.BaseURL, "/")
	cfg.Catalog = expandPath(cfg.Catalog)
	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvAPIURL); ok && v != "" {
		cfg.API.BaseURL = strings.TrimSuffix(v, "/")
	}
	if v, ok := os.LookupEnv(EnvAPIToken); ok && v != "" {
		cfg.API.Token = v
	}
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/prodify/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "prodify", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasCatalogFile returns true if an offline catalog file is configured.
func (c *Config) HasCatalogFile() bool {
	return c.Catalog != ""
}

// GetAPIConfig returns the API configuration with defaults applied.
func (c *Config) GetAPIConfig() APIConfig {
	cfg := c.API
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player
	if cfg.SkipIncrement <= 0 {
		cfg.SkipIncrement = DefaultSkipIncrement
	}
	if cfg.PositionInterval <= 0 {
		cfg.PositionInterval = DefaultPositionInterval
	}
	if cfg.MaxDownloadMB <= 0 {
		cfg.MaxDownloadMB = DefaultMaxDownloadMB
	}
	return cfg
}

// DefaultVolume returns the configured initial volume clamped to [0, 1], 1.0 when unset.
func (c *Config) DefaultVolume() float64 {
	if c.Player.Volume == nil {
		return 1
	}
	return min(max(*c.Player.Volume, 0), 1)
}

// GetSearchDebounce returns the search debounce delay.
func (c *Config) GetSearchDebounce() time.Duration {
	if c.Search.Debounce <= 0 {
		return DefaultSearchDebounce
	}
	return c.Search.Debounce
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
		cfg.Level = strings.ToLower(cfg.Level)
	default:
		cfg.Level = "info"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, "prodify", "prodify.log")
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 28
	}
	if cfg.Compress == nil {
		compress := true
		cfg.Compress = &compress
	}
	return cfg
}
