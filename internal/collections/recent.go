package collections

import (
	"sync"

	"github.com/strum-player/strum/internal/core"
)

// DefaultRecentLimit is the number of recently played tracks kept.
const DefaultRecentLimit = 10

// Recent is the recently-played history: most recent first, bounded, with
// at most one entry per video ID.
type Recent struct {
	mu     sync.RWMutex
	tracks []core.Track
	limit  int
}

// NewRecent creates a history bounded to limit entries. A non-positive
// limit uses DefaultRecentLimit.
func NewRecent(limit int) *Recent {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return &Recent{limit: limit}
}

// Add records a play of the track. A track already present moves to the
// front without changing the history length.
func (r *Recent) Add(track core.Track) {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := r.tracks[:0]
	for _, t := range r.tracks {
		if t.VideoID != track.VideoID {
			filtered = append(filtered, t)
		}
	}
	r.tracks = append([]core.Track{track}, filtered...)
	if len(r.tracks) > r.limit {
		r.tracks = r.tracks[:r.limit]
	}
}

// Tracks returns a snapshot of the history, most recent first.
func (r *Recent) Tracks() []core.Track {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]core.Track(nil), r.tracks...)
}

// Len returns the number of tracks in the history.
func (r *Recent) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tracks)
}
