package cli

import (
	"time"

	"github.com/strum-player/strum/internal/controller"
	"github.com/strum-player/strum/internal/player/embedded"
	"github.com/strum-player/strum/internal/youtube"
)

// newYouTubeClient builds an API client from the loaded configuration.
func newYouTubeClient() *youtube.Client {
	var cache *youtube.Cache
	if cfg.Cache.Enabled {
		cache = youtube.NewCache(time.Duration(cfg.Cache.TTLMinutes) * time.Minute)
	}
	return youtube.NewClient(youtube.Options{
		APIKey:     cfg.YouTube.APIKey,
		Region:     cfg.YouTube.Region,
		MaxResults: cfg.YouTube.MaxResults,
		Cache:      cache,
	})
}

// newController builds a playback controller on the embedded backend.
func newController() *controller.Controller {
	factory := embedded.NewFactory(cfg.Player.AudioDir)
	return controller.New(factory, controller.Config{
		Volume:       cfg.Player.Volume,
		PollInterval: time.Duration(cfg.Player.PollIntervalMS) * time.Millisecond,
	})
}
