package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		YouTube: YouTubeConfig{
			Region:     "US",
			MaxResults: 25,
		},
		Player: PlayerConfig{
			Volume:         80,
			PollIntervalMS: 500,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLMinutes: 30,
		},
		TUI: TUIConfig{
			Theme: "mocha",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// YouTube
	if c.YouTube.Region == "" {
		c.YouTube.Region = d.YouTube.Region
	}
	if c.YouTube.MaxResults == 0 {
		c.YouTube.MaxResults = d.YouTube.MaxResults
	}

	// Player
	if c.Player.Volume == 0 {
		c.Player.Volume = d.Player.Volume
	}
	if c.Player.PollIntervalMS == 0 {
		c.Player.PollIntervalMS = d.Player.PollIntervalMS
	}

	// Cache
	if c.Cache.TTLMinutes == 0 {
		c.Cache.TTLMinutes = d.Cache.TTLMinutes
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
