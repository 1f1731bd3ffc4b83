package core

// Track represents a playable track from the streaming catalog.
type Track struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	Duration     string `json:"duration,omitempty"` // display string, e.g. "3:42"
}

// Same reports whether two tracks refer to the same video.
// Track identity is the video ID; all other fields are display metadata.
func (t Track) Same(other Track) bool {
	return t.VideoID == other.VideoID
}

// WatchURL returns the public watch page URL for the track.
func (t Track) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + t.VideoID
}
