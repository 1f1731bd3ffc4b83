package core

// Queue represents the active play context: the ordered list of tracks
// that defines what plays next under non-shuffle navigation.
type Queue struct {
	Tracks       []Track `json:"tracks"`
	CurrentIndex int     `json:"current_index"`
}

// Current returns the track at the current position, or nil if the queue
// is empty or the index is out of range.
func (q *Queue) Current() *Track {
	if q == nil || len(q.Tracks) == 0 || q.CurrentIndex < 0 || q.CurrentIndex >= len(q.Tracks) {
		return nil
	}
	return &q.Tracks[q.CurrentIndex]
}

// Upcoming returns tracks after the current position.
func (q *Queue) Upcoming() []Track {
	if q == nil || len(q.Tracks) == 0 || q.CurrentIndex < 0 || q.CurrentIndex >= len(q.Tracks)-1 {
		return nil
	}
	return q.Tracks[q.CurrentIndex+1:]
}

// IndexOf returns the position of the track with the given video ID,
// or -1 if it is not in the queue.
func (q *Queue) IndexOf(videoID string) int {
	if q == nil {
		return -1
	}
	for i, t := range q.Tracks {
		if t.VideoID == videoID {
			return i
		}
	}
	return -1
}

// Len returns the total number of tracks in the queue.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.Tracks)
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}
