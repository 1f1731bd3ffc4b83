package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.YouTube.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("youtube: %w", err))
	}
	if err := c.Player.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if err := c.Cache.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("cache: %w", err))
	}
	if err := c.TUI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tui: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks YouTubeConfig for errors.
func (c *YouTubeConfig) Validate() error {
	if len(c.Region) != 0 && len(c.Region) != 2 {
		return fmt.Errorf("invalid region: %s (must be a two-letter ISO 3166-1 code)", c.Region)
	}
	if c.MaxResults < 0 || c.MaxResults > 50 {
		return errors.New("max_results must be between 0 and 50")
	}
	return nil
}

// Validate checks PlayerConfig for errors.
func (c *PlayerConfig) Validate() error {
	if c.Volume < 0 || c.Volume > 100 {
		return errors.New("volume must be between 0 and 100")
	}
	if c.PollIntervalMS < 0 {
		return errors.New("poll_interval_ms must be non-negative")
	}
	return nil
}

// Validate checks CacheConfig for errors.
func (c *CacheConfig) Validate() error {
	if c.TTLMinutes < 0 {
		return errors.New("ttl_minutes must be non-negative")
	}
	return nil
}

// Validate checks TUIConfig for errors.
func (c *TUIConfig) Validate() error {
	switch c.Theme {
	case "", "latte", "frappe", "macchiato", "mocha":
		// valid
	default:
		return fmt.Errorf("invalid theme: %s (must be latte, frappe, macchiato, or mocha)", c.Theme)
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	return nil
}
