package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/beats.json", filepath.Join(home, "beats.json")},
		{"tilde with nested path", "~/.local/state/prodify.log", filepath.Join(home, ".local", "state", "prodify.log")},
		{"absolute path unchanged", "/var/log/prodify.log", "/var/log/prodify.log"},
		{"relative path unchanged", "data/catalog.json", "data/catalog.json"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	if last := paths[len(paths)-1]; last != "config.toml" {
		t.Errorf("last config path = %q, want %q", last, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "prodify", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestLoadFiles_Sections(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
icons = "unicode"
catalog = "/srv/beats.json"

[api]
base_url = "https://beats.example.com/api/"
token = "secret"
timeout = "3s"

[player]
volume = 0.4
skip_increment = "10s"
position_interval = "100ms"

[search]
debounce = "300ms"

[log]
level = "debug"
file = "/tmp/prodify.log"
max_size = 5
compress = false
`)

	cfg, err := loadFiles([]string{path})
	if err != nil {
		t.Fatalf("loadFiles() error = %v", err)
	}

	if cfg.Icons != "unicode" {
		t.Errorf("Icons = %q, want unicode", cfg.Icons)
	}
	if !cfg.HasCatalogFile() || cfg.Catalog != "/srv/beats.json" {
		t.Errorf("Catalog = %q, want /srv/beats.json", cfg.Catalog)
	}

	api := cfg.GetAPIConfig()
	if api.BaseURL != "https://beats.example.com/api" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", api.BaseURL)
	}
	if api.Token != "secret" {
		t.Errorf("Token = %q, want secret", api.Token)
	}
	if api.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", api.Timeout)
	}

	player := cfg.GetPlayerConfig()
	if player.SkipIncrement != 10*time.Second {
		t.Errorf("SkipIncrement = %v, want 10s", player.SkipIncrement)
	}
	if player.PositionInterval != 100*time.Millisecond {
		t.Errorf("PositionInterval = %v, want 100ms", player.PositionInterval)
	}
	if v := cfg.DefaultVolume(); v != 0.4 {
		t.Errorf("DefaultVolume() = %v, want 0.4", v)
	}
	if d := cfg.GetSearchDebounce(); d != 300*time.Millisecond {
		t.Errorf("GetSearchDebounce() = %v, want 300ms", d)
	}

	log := cfg.GetLogConfig()
	if log.Level != "debug" || log.File != "/tmp/prodify.log" || log.MaxSize != 5 {
		t.Errorf("GetLogConfig() = %+v", log)
	}
	if *log.Compress {
		t.Error("Compress = true, want false")
	}
}

func TestLoadFiles_LaterFileWins(t *testing.T) {
	first := writeConfig(t, t.TempDir(), `
icons = "nerd"
[api]
token = "from-home"
`)
	second := writeConfig(t, t.TempDir(), `
[api]
token = "from-cwd"
`)

	cfg, err := loadFiles([]string{first, second})
	if err != nil {
		t.Fatalf("loadFiles() error = %v", err)
	}
	if cfg.API.Token != "from-cwd" {
		t.Errorf("Token = %q, want from-cwd", cfg.API.Token)
	}
	if cfg.Icons != "nerd" {
		t.Errorf("Icons = %q, want nerd (kept from first file)", cfg.Icons)
	}
}

func TestLoadFiles_MissingFilesIgnored(t *testing.T) {
	cfg, err := loadFiles([]string{filepath.Join(t.TempDir(), "nope.toml")})
	if err != nil {
		t.Fatalf("loadFiles() error = %v", err)
	}
	if cfg.HasCatalogFile() {
		t.Error("HasCatalogFile() = true for empty config")
	}
}

func TestLoadFiles_InvalidToml(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "invalid = [[[")

	if _, err := loadFiles([]string{path}); err == nil {
		t.Error("loadFiles() should fail on invalid TOML")
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config

	api := cfg.GetAPIConfig()
	if api.BaseURL != DefaultBaseURL || api.Timeout != DefaultTimeout {
		t.Errorf("GetAPIConfig() = %+v", api)
	}
	player := cfg.GetPlayerConfig()
	if player.SkipIncrement != DefaultSkipIncrement ||
		player.PositionInterval != DefaultPositionInterval ||
		player.MaxDownloadMB != DefaultMaxDownloadMB {
		t.Errorf("GetPlayerConfig() = %+v", player)
	}
	if cfg.DefaultVolume() != 1 {
		t.Errorf("DefaultVolume() = %v, want 1", cfg.DefaultVolume())
	}
	if cfg.GetSearchDebounce() != DefaultSearchDebounce {
		t.Errorf("GetSearchDebounce() = %v", cfg.GetSearchDebounce())
	}

	log := cfg.GetLogConfig()
	if log.Level != "info" || log.MaxSize != 10 || log.MaxBackups != 3 || log.MaxAge != 28 || !*log.Compress {
		t.Errorf("GetLogConfig() = %+v", log)
	}
	if filepath.Base(log.File) != "prodify.log" {
		t.Errorf("log file = %q, want prodify.log", log.File)
	}
}

func TestDefaultVolume_Clamped(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0.7, 0.7},
		{1.7, 1},
	}
	for _, tt := range tests {
		cfg := Config{Player: PlayerConfig{Volume: &tt.in}}
		if got := cfg.DefaultVolume(); got != tt.want {
			t.Errorf("DefaultVolume() with %v = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGetLogConfig_UnknownLevel(t *testing.T) {
	cfg := Config{Log: LogConfig{Level: "LOUD"}}
	if got := cfg.GetLogConfig().Level; got != "info" {
		t.Errorf("Level = %q, want info", got)
	}
	cfg.Log.Level = "WARN"
	if got := cfg.GetLogConfig().Level; got != "warn" {
		t.Errorf("Level = %q, want warn", got)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	writeConfig(t, ".", `
[api]
base_url = "http://file.example/api"
token = "file-token"
`)
	t.Setenv(EnvAPIURL, "https://env.example/api/")
	t.Setenv(EnvAPIToken, "env-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "https://env.example/api" {
		t.Errorf("BaseURL = %q, want env override", cfg.API.BaseURL)
	}
	if cfg.API.Token != "env-token" {
		t.Errorf("Token = %q, want env override", cfg.API.Token)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile(".env", []byte(EnvAPIToken+"=dotenv-token\n"), 0o600); err != nil {
		t.Fatalf("could not write .env: %v", err)
	}
	// Setenv restores the original value afterwards; godotenv only fills unset variables.
	t.Setenv(EnvAPIToken, "")
	os.Unsetenv(EnvAPIToken)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.Token != "dotenv-token" {
		t.Errorf("Token = %q, want dotenv-token", cfg.API.Token)
	}
}
