package config

// Config is the root configuration structure.
type Config struct {
	YouTube YouTubeConfig `toml:"youtube"`
	Player  PlayerConfig  `toml:"player"`
	Cache   CacheConfig   `toml:"cache"`
	TUI     TUIConfig     `toml:"tui"`
	Log     LogConfig     `toml:"log"`
}

// YouTubeConfig holds YouTube Data API settings.
type YouTubeConfig struct {
	APIKey     string `toml:"api_key"`
	Region     string `toml:"region"`
	MaxResults int    `toml:"max_results"`
}

// PlayerConfig holds playback settings.
type PlayerConfig struct {
	Volume         int    `toml:"volume"`
	PollIntervalMS int    `toml:"poll_interval_ms"`
	AudioDir       string `toml:"audio_dir"`
}

// CacheConfig holds API response cache settings.
type CacheConfig struct {
	Enabled    bool `toml:"enabled"`
	TTLMinutes int  `toml:"ttl_minutes"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
