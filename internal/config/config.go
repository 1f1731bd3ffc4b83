package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.strumrc, $XDG_CONFIG_HOME/strum/config.toml, ~/.config/strum/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	// Try loading from file
	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Save writes the configuration to the default XDG path, creating the
// directory if needed. Returns the path written.
func Save(cfg *Config) (string, error) {
	dir := configDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "config.toml")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return "", err
	}
	return path, nil
}

// Path returns the active config file path: the first existing standard
// location, or the default XDG path when none exists yet.
func Path() string {
	if p := findConfigFile(); p != "" {
		return p
	}
	return filepath.Join(configDir(), "config.toml")
}

func configDir() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "strum")
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".strumrc"),
		filepath.Join(configDir(), "config.toml"),
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// YouTube
	if v := os.Getenv("STRUM_YOUTUBE_API_KEY"); v != "" {
		cfg.YouTube.APIKey = v
	}
	if v := os.Getenv("STRUM_YOUTUBE_REGION"); v != "" {
		cfg.YouTube.Region = v
	}
	if v := os.Getenv("STRUM_YOUTUBE_MAX_RESULTS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.YouTube.MaxResults = i
		}
	}

	// Player
	if v := os.Getenv("STRUM_PLAYER_VOLUME"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Player.Volume = i
		}
	}
	if v := os.Getenv("STRUM_PLAYER_POLL_INTERVAL_MS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Player.PollIntervalMS = i
		}
	}

	// TUI
	if v := os.Getenv("STRUM_TUI_THEME"); v != "" {
		cfg.TUI.Theme = v
	}

	// Log
	if v := os.Getenv("STRUM_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("STRUM_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
