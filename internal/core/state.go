package core

// PlaybackState is the single consistent view of what is playing and how
// far along. It is owned by the playback controller; everything else reads
// snapshots of it.
type PlaybackState struct {
	CurrentTrack *Track  `json:"current_track"`
	IsPlaying    bool    `json:"is_playing"`
	Queue        Queue   `json:"queue"`
	Progress     float64 `json:"progress"`     // percent, 0-100
	CurrentTime  float64 `json:"current_time"` // seconds
	Duration     float64 `json:"duration"`     // seconds
	Volume       int     `json:"volume"`       // 0-100; preserved across mute
	IsMuted      bool    `json:"is_muted"`
	IsShuffle    bool    `json:"is_shuffle"`
	IsRepeat     bool    `json:"is_repeat"`
}

// HasTrack returns true if a track is loaded.
func (s *PlaybackState) HasTrack() bool {
	return s != nil && s.CurrentTrack != nil
}

// SetPosition records a playback position sample, keeping the percentage
// consistent with the absolute time. Samples without a known duration are
// ignored.
func (s *PlaybackState) SetPosition(currentTime, duration float64) {
	if duration <= 0 {
		return
	}
	s.CurrentTime = currentTime
	s.Duration = duration
	s.Progress = currentTime / duration * 100
}
