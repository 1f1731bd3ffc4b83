// Package controller implements the playback controller: it owns the
// playback state, mediates every user intent into operations on the
// external player, and reconciles the state against the player's
// asynchronous events.
//
// All mutations are serialized through a single mutex. Three independent
// sources write into the state in an interleaved, unordered way: direct
// user intents, the player's event callbacks, and the periodic
// progress-sync loop. The controller tolerates any interleaving of the
// three; it never assumes ordering between an intent and an event.
package controller

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/strum-player/strum/internal/collections"
	"github.com/strum-player/strum/internal/core"
	"github.com/strum-player/strum/internal/player"
)

// DefaultPollInterval is the progress-sync sampling interval.
const DefaultPollInterval = 500 * time.Millisecond

// DefaultVolume is the initial volume when none is configured.
const DefaultVolume = 80

// Config configures a Controller.
type Config struct {
	Volume       int           // initial volume (1-100); DefaultVolume if zero
	PollInterval time.Duration // progress sampling interval; DefaultPollInterval if zero
	RecentLimit  int           // recently-played bound; collections default if zero
}

// Controller owns the playback state for the session. Create one per
// session with New and release it with Close.
type Controller struct {
	mu sync.Mutex

	factory  player.Factory
	instance player.Instance
	ready    bool

	// loadGen tags each play intent; asynchronous completions that observe
	// a stale generation are discarded. instGen identifies the live
	// instance so events from a discarded instance are ignored.
	loadGen uint64
	instGen uint64

	state  core.PlaybackState
	liked  *collections.Liked
	recent *collections.Recent

	pollInterval time.Duration
	progressStop chan struct{}

	randIntN func(n int) int

	subsMu sync.RWMutex
	subs   []*Subscription

	closed bool
}

// New creates a controller attached to the given player factory. The
// player instance itself is created lazily on the first play intent.
func New(factory player.Factory, cfg Config) *Controller {
	volume := cfg.Volume
	if volume <= 0 || volume > 100 {
		volume = DefaultVolume
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Controller{
		factory:      factory,
		liked:        collections.NewLiked(),
		recent:       collections.NewRecent(cfg.RecentLimit),
		pollInterval: interval,
		randIntN:     rand.IntN,
		state: core.PlaybackState{
			Volume: volume,
		},
	}
}

// State returns a snapshot of the playback state.
func (c *Controller) State() core.PlaybackState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() core.PlaybackState {
	snap := c.state
	snap.Queue.Tracks = append([]core.Track(nil), c.state.Queue.Tracks...)
	if c.state.CurrentTrack != nil {
		t := *c.state.CurrentTrack
		snap.CurrentTrack = &t
	}
	return snap
}

// PlayTrack loads and starts the given track. A non-empty queue replaces
// the active play context; the current index becomes the track's position
// within it (0 if not found). The track is always recorded into the
// recently-played history.
func (c *Controller) PlayTrack(track core.Track, queue []core.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.playTrackLocked(track, queue)
}

func (c *Controller) playTrackLocked(track core.Track, queue []core.Track) {
	prev := c.state.CurrentTrack

	t := track
	c.state.CurrentTrack = &t
	c.state.IsPlaying = true
	c.state.CurrentTime = 0
	c.state.Progress = 0

	if len(queue) > 0 {
		c.state.Queue.Tracks = append([]core.Track(nil), queue...)
		idx := c.state.Queue.IndexOf(track.VideoID)
		if idx < 0 {
			idx = 0
		}
		c.state.Queue.CurrentIndex = idx
	}

	c.recent.Add(track)
	c.notifyTrack(TrackChange{Previous: prev, Current: track, Index: c.state.Queue.CurrentIndex})

	c.attachLocked(track.VideoID)
}

// TogglePlayPause issues the play or pause command matching the inverse of
// the current state. The stored flag is not flipped here: the player's
// state-change event is the single writer of IsPlaying, so intent and
// event can never diverge. A no-op before the player is ready.
func (c *Controller) TogglePlayPause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.instance == nil || !c.ready {
		return
	}
	if c.state.IsPlaying {
		_ = c.instance.PauseVideo()
	} else {
		_ = c.instance.PlayVideo()
	}
}

// PlayNext advances to the next track. With shuffle on, the next index is
// uniformly random over the whole queue and may repeat the current track;
// that is the contract, not a bug. A no-op on an empty queue.
func (c *Controller) PlayNext() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.playNextLocked()
}

func (c *Controller) playNextLocked() {
	n := c.state.Queue.Len()
	if n == 0 {
		return
	}
	var next int
	if c.state.IsShuffle {
		next = c.randIntN(n)
	} else {
		next = (c.state.Queue.CurrentIndex + 1) % n
	}
	c.state.Queue.CurrentIndex = next
	c.playTrackLocked(c.state.Queue.Tracks[next], c.state.Queue.Tracks)
}

// PlayPrev steps back to the previous track, wrapping to the end from
// index 0. Deterministic regardless of shuffle. A no-op on an empty queue.
func (c *Controller) PlayPrev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	n := c.state.Queue.Len()
	if n == 0 {
		return
	}
	prev := c.state.Queue.CurrentIndex - 1
	if c.state.Queue.CurrentIndex == 0 {
		prev = n - 1
	}
	c.state.Queue.CurrentIndex = prev
	c.playTrackLocked(c.state.Queue.Tracks[prev], c.state.Queue.Tracks)
}

// SeekTo seeks to a position expressed as a percentage of the duration.
// The stored position is updated optimistically so the UI does not lag a
// poll interval behind the user. A no-op until a duration is known.
func (c *Controller) SeekTo(percentage float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.instance == nil || !c.ready || c.state.Duration <= 0 {
		return
	}
	seconds := percentage / 100 * c.state.Duration
	_ = c.instance.SeekTo(seconds, true)
	c.state.CurrentTime = seconds
	c.state.Progress = percentage
	c.notifyProgress(ProgressChange{
		CurrentTime: seconds,
		Duration:    c.state.Duration,
		Percent:     percentage,
	})
}

// ChangeVolume sets the volume. Callers pass slider values already in
// 0-100; the value is not re-clamped here. Zero volume implies muted, any
// other value clears the mute flag.
func (c *Controller) ChangeVolume(volume int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state.Volume = volume
	if c.instance != nil {
		_ = c.instance.SetVolume(volume)
	}
	c.state.IsMuted = volume == 0
	c.notifyVolume(VolumeChange{Volume: c.state.Volume, IsMuted: c.state.IsMuted})
}

// ToggleMute flips the mute flag. The stored volume is preserved across a
// mute; unmuting re-applies it because some players restore an arbitrary
// prior level on unmute.
func (c *Controller) ToggleMute() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state.IsMuted = !c.state.IsMuted
	if c.instance != nil {
		if c.state.IsMuted {
			_ = c.instance.Mute()
		} else {
			_ = c.instance.UnMute()
			_ = c.instance.SetVolume(c.state.Volume)
		}
	}
	c.notifyVolume(VolumeChange{Volume: c.state.Volume, IsMuted: c.state.IsMuted})
}

// ToggleShuffle flips the shuffle flag.
func (c *Controller) ToggleShuffle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state.IsShuffle = !c.state.IsShuffle
	c.notifyMode(ModeChange{IsShuffle: c.state.IsShuffle, IsRepeat: c.state.IsRepeat})
}

// ToggleRepeat flips the repeat flag.
func (c *Controller) ToggleRepeat() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state.IsRepeat = !c.state.IsRepeat
	c.notifyMode(ModeChange{IsShuffle: c.state.IsShuffle, IsRepeat: c.state.IsRepeat})
}

// ToggleLike adds the track to the liked set, or removes it if already
// present. Returns true if the track is liked after the call.
func (c *Controller) ToggleLike(track core.Track) bool {
	liked := c.liked.Toggle(track)
	c.notifyLike(LikeChange{Track: track, Liked: liked})
	return liked
}

// IsLiked reports whether the track with the given video ID is liked.
func (c *Controller) IsLiked(videoID string) bool {
	return c.liked.Contains(videoID)
}

// Liked returns a snapshot of the liked tracks, most recently liked first.
func (c *Controller) Liked() []core.Track {
	return c.liked.Tracks()
}

// RecentlyPlayed returns a snapshot of the play history, most recent first.
func (c *Controller) RecentlyPlayed() []core.Track {
	return c.recent.Tracks()
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Unsubscribe removes a subscription and signals its Done channel.
func (c *Controller) Unsubscribe(sub *Subscription) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			sub.close()
			return
		}
	}
}

// Close tears the controller down: the progress loop is stopped, the
// player instance destroyed, and all subscriptions closed.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.stopProgressLocked()
	if c.instance != nil {
		c.instance.Destroy()
		c.instance = nil
	}
	c.ready = false
	c.mu.Unlock()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	log.Debug().Msg("playback controller closed")
}

func (c *Controller) notifyState(e StateChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, s := range c.subs {
		s.sendState(e)
	}
}

func (c *Controller) notifyTrack(e TrackChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, s := range c.subs {
		s.sendTrack(e)
	}
}

func (c *Controller) notifyProgress(e ProgressChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, s := range c.subs {
		s.sendProgress(e)
	}
}

func (c *Controller) notifyMode(e ModeChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, s := range c.subs {
		s.sendMode(e)
	}
}

func (c *Controller) notifyVolume(e VolumeChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, s := range c.subs {
		s.sendVolume(e)
	}
}

func (c *Controller) notifyLike(e LikeChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, s := range c.subs {
		s.sendLike(e)
	}
}

func (c *Controller) notifyError(e ErrorEvent) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, s := range c.subs {
		s.sendError(e)
	}
}
