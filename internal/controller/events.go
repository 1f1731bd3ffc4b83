package controller

import "github.com/strum-player/strum/internal/core"

// StateChange is emitted when the authoritative play/pause flag changes.
type StateChange struct {
	IsPlaying bool
}

// TrackChange is emitted when playback starts on a different track.
type TrackChange struct {
	Previous *core.Track
	Current  core.Track
	Index    int
}

// ProgressChange is emitted by the progress-sync loop and by seeks.
type ProgressChange struct {
	CurrentTime float64 // seconds
	Duration    float64 // seconds
	Percent     float64 // 0-100
}

// ModeChange is emitted when shuffle or repeat toggles.
type ModeChange struct {
	IsShuffle bool
	IsRepeat  bool
}

// VolumeChange is emitted when volume or mute changes.
type VolumeChange struct {
	Volume  int
	IsMuted bool
}

// LikeChange is emitted when a track is liked or unliked.
type LikeChange struct {
	Track core.Track
	Liked bool
}

// ErrorEvent is emitted when the external player reports an error. The
// playback state is left as-is; the user stays on a paused or stalled view
// until they issue a new intent.
type ErrorEvent struct {
	Code  int
	Track *core.Track
}
