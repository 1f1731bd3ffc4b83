// Package collections holds the session's track collections: the liked-songs
// set and the recently-played history. Both are derived from playback
// controller transitions and live only for the session.
package collections

import (
	"sync"

	"github.com/strum-player/strum/internal/core"
)

// Liked is the set of liked tracks, keyed by video ID and ordered with the
// most recently liked first.
type Liked struct {
	mu     sync.RWMutex
	tracks []core.Track
}

// NewLiked creates an empty liked-songs collection.
func NewLiked() *Liked {
	return &Liked{}
}

// Toggle removes the track if it is liked, otherwise prepends it.
// Returns true if the track is liked after the call.
func (l *Liked) Toggle(track core.Track) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, t := range l.tracks {
		if t.VideoID == track.VideoID {
			l.tracks = append(l.tracks[:i], l.tracks[i+1:]...)
			return false
		}
	}
	l.tracks = append([]core.Track{track}, l.tracks...)
	return true
}

// Contains reports whether the track with the given video ID is liked.
func (l *Liked) Contains(videoID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, t := range l.tracks {
		if t.VideoID == videoID {
			return true
		}
	}
	return false
}

// Tracks returns a snapshot of the liked tracks, most recently liked first.
func (l *Liked) Tracks() []core.Track {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]core.Track(nil), l.tracks...)
}

// Len returns the number of liked tracks.
func (l *Liked) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.tracks)
}
