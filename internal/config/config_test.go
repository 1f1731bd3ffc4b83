package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[youtube]
api_key = "test-key"
region = "DE"

[player]
volume = 60

[tui]
theme = "latte"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.YouTube.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want test-key", cfg.YouTube.APIKey)
	}
	if cfg.YouTube.Region != "DE" {
		t.Errorf("Region = %q, want DE", cfg.YouTube.Region)
	}
	if cfg.Player.Volume != 60 {
		t.Errorf("Volume = %d, want 60", cfg.Player.Volume)
	}
	if cfg.TUI.Theme != "latte" {
		t.Errorf("Theme = %q, want latte", cfg.TUI.Theme)
	}
	// Unset fields get defaults.
	if cfg.YouTube.MaxResults != 25 {
		t.Errorf("MaxResults = %d, want default 25", cfg.YouTube.MaxResults)
	}
	if cfg.Player.PollIntervalMS != 500 {
		t.Errorf("PollIntervalMS = %d, want default 500", cfg.Player.PollIntervalMS)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.YouTube.Region != "US" || cfg.Player.Volume != 80 || cfg.Log.Level != "info" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Cache.TTLMinutes != 30 {
		t.Errorf("TTLMinutes = %d, want 30", cfg.Cache.TTLMinutes)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STRUM_YOUTUBE_API_KEY", "env-key")
	t.Setenv("STRUM_PLAYER_VOLUME", "33")
	t.Setenv("STRUM_LOG_LEVEL", "debug")
	t.Setenv("STRUM_YOUTUBE_MAX_RESULTS", "not-a-number")

	cfg := &Config{}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	if cfg.YouTube.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.YouTube.APIKey)
	}
	if cfg.Player.Volume != 33 {
		t.Errorf("Volume = %d, want 33", cfg.Player.Volume)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Log.Level)
	}
	// Unparsable numeric overrides are ignored.
	if cfg.YouTube.MaxResults != 25 {
		t.Errorf("MaxResults = %d, want default 25", cfg.YouTube.MaxResults)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad region", func(c *Config) { c.YouTube.Region = "USA" }, "region"},
		{"bad max results", func(c *Config) { c.YouTube.MaxResults = 99 }, "max_results"},
		{"bad volume", func(c *Config) { c.Player.Volume = 150 }, "volume"},
		{"bad theme", func(c *Config) { c.TUI.Theme = "solarized" }, "theme"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.YouTube.APIKey = "saved-key"
	path, err := Save(cfg)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.YouTube.APIKey != "saved-key" {
		t.Errorf("APIKey = %q, want saved-key", loaded.YouTube.APIKey)
	}
}
