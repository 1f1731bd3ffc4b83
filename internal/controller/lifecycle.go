package controller

import (
	"github.com/rs/zerolog/log"
	"github.com/strum-player/strum/internal/player"
)

// attachLocked points the external player at the given video. The instance
// is created lazily and reused across track changes through in-place
// loads; only when an in-place load fails is it discarded and recreated.
// Called with c.mu held.
func (c *Controller) attachLocked(videoID string) {
	c.loadGen++
	gen := c.loadGen

	if c.instance != nil {
		if err := c.instance.LoadVideoByID(videoID); err == nil {
			if c.ready {
				_ = c.instance.PlayVideo()
			}
			return
		}
		log.Warn().Str("video_id", videoID).Msg("in-place load failed, recreating player instance")
		c.discardInstanceLocked()
	}

	if !c.factory.Available() {
		// The player library has not finished loading. Defer creation to
		// its ready callback; a newer play intent in the meantime
		// supersedes this one via the generation check. Factories may
		// invoke the callback synchronously when the library landed
		// between the Available check and registration, so the work moves
		// to its own goroutine before taking the lock again.
		c.factory.OnAvailable(func() {
			go func() {
				c.mu.Lock()
				defer c.mu.Unlock()
				if c.closed || gen != c.loadGen {
					return
				}
				c.createInstanceLocked()
			}()
		})
		return
	}

	c.createInstanceLocked()
}

// createInstanceLocked creates a fresh player instance targeting the
// current track. Event callbacks carry the instance generation so that
// events from a discarded instance are ignored.
func (c *Controller) createInstanceLocked() {
	if c.state.CurrentTrack == nil {
		return
	}
	videoID := c.state.CurrentTrack.VideoID

	c.instGen++
	gen := c.instGen
	events := player.Events{
		OnReady:       func() { c.handleReady(gen) },
		OnStateChange: func(s player.State) { c.handleStateChange(gen, s) },
		OnError:       func(code int) { c.handleError(gen, code) },
	}

	inst, err := c.factory.Create(videoID, player.Options{
		Autoplay:   true,
		StartMuted: false,
		Volume:     c.state.Volume,
	}, events)
	if err != nil {
		// Creation after a failed in-place load was the last resort.
		// Fatal for this track only: surface and stay put.
		log.Error().Err(err).Str("video_id", videoID).Msg("player instance creation failed")
		c.notifyError(ErrorEvent{Code: player.ErrCodePlayback, Track: c.state.CurrentTrack})
		return
	}
	c.instance = inst
	c.ready = false
}

func (c *Controller) discardInstanceLocked() {
	c.stopProgressLocked()
	c.instance.Destroy()
	c.instance = nil
	c.ready = false
}

// handleReady runs on the player's ready event: apply the stored volume
// and mute state, start playback, and start the progress-sync loop.
func (c *Controller) handleReady(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.instGen || c.instance == nil {
		return
	}
	c.ready = true
	_ = c.instance.SetVolume(c.state.Volume)
	if c.state.IsMuted {
		_ = c.instance.Mute()
	}
	_ = c.instance.PlayVideo()
	c.startProgressLocked()
}

// handleStateChange reconciles the authoritative IsPlaying flag with the
// player's reported state and drives end-of-track behavior.
func (c *Controller) handleStateChange(gen uint64, s player.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.instGen || c.instance == nil {
		return
	}

	switch s {
	case player.StatePlaying:
		if !c.state.IsPlaying {
			c.state.IsPlaying = true
			c.notifyState(StateChange{IsPlaying: true})
		}
		c.startProgressLocked()
	case player.StatePaused:
		if c.state.IsPlaying {
			c.state.IsPlaying = false
			c.notifyState(StateChange{IsPlaying: false})
		}
		c.stopProgressLocked()
	case player.StateEnded:
		c.handleEndedLocked()
	}
}

// handleEndedLocked implements end-of-track: with repeat on, the same
// track replays from zero without re-entering PlayTrack (so the history
// gains no duplicate entry); otherwise playback advances to the next
// track.
func (c *Controller) handleEndedLocked() {
	if c.state.IsRepeat {
		_ = c.instance.SeekTo(0, true)
		_ = c.instance.PlayVideo()
		c.state.CurrentTime = 0
		c.state.Progress = 0
		c.notifyProgress(ProgressChange{
			CurrentTime: 0,
			Duration:    c.state.Duration,
			Percent:     0,
		})
		return
	}
	c.playNextLocked()
}

// handleError logs and surfaces a player error event. Playback state is
// left as-is; there is no automatic retry.
func (c *Controller) handleError(gen uint64, code int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.instGen {
		return
	}
	log.Warn().Int("code", code).Msg("external player error")
	c.notifyError(ErrorEvent{Code: code, Track: c.state.CurrentTrack})
}
