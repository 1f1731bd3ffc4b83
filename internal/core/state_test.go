package core

import "testing"

func TestSetPosition(t *testing.T) {
	var s PlaybackState
	s.SetPosition(45, 180)
	if s.CurrentTime != 45 || s.Duration != 180 {
		t.Errorf("position = %v/%v, want 45/180", s.CurrentTime, s.Duration)
	}
	if s.Progress != 25 {
		t.Errorf("Progress = %v, want 25", s.Progress)
	}
}

func TestSetPositionIgnoresUnknownDuration(t *testing.T) {
	s := PlaybackState{CurrentTime: 10, Duration: 100, Progress: 10}
	s.SetPosition(50, 0)
	if s.CurrentTime != 10 || s.Progress != 10 {
		t.Errorf("sample without duration applied: %v/%v%%", s.CurrentTime, s.Progress)
	}
}

func TestHasTrack(t *testing.T) {
	var nilState *PlaybackState
	if nilState.HasTrack() {
		t.Error("nil state reports a track")
	}
	s := PlaybackState{}
	if s.HasTrack() {
		t.Error("empty state reports a track")
	}
	s.CurrentTrack = &Track{VideoID: "a"}
	if !s.HasTrack() {
		t.Error("state with track reports none")
	}
}

func TestTrackWatchURL(t *testing.T) {
	tr := Track{VideoID: "dQw4w9WgXcQ"}
	want := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	if got := tr.WatchURL(); got != want {
		t.Errorf("WatchURL() = %s, want %s", got, want)
	}
}

func TestTrackSame(t *testing.T) {
	a := Track{VideoID: "x", Title: "one"}
	b := Track{VideoID: "x", Title: "two"}
	if !a.Same(b) {
		t.Error("tracks with equal video IDs should match")
	}
	if a.Same(Track{VideoID: "y"}) {
		t.Error("tracks with different video IDs should not match")
	}
}
