package collections

import (
	"fmt"
	"testing"
)

func TestRecentAddsNewestFirst(t *testing.T) {
	r := NewRecent(0)
	r.Add(track("a"))
	r.Add(track("b"))

	tracks := r.Tracks()
	if len(tracks) != 2 {
		t.Fatalf("Len = %d, want 2", len(tracks))
	}
	if tracks[0].VideoID != "b" || tracks[1].VideoID != "a" {
		t.Errorf("tracks = [%s %s], want [b a]", tracks[0].VideoID, tracks[1].VideoID)
	}
}

func TestRecentDeduplicatesMoveToFront(t *testing.T) {
	r := NewRecent(0)
	r.Add(track("a"))
	r.Add(track("b"))
	r.Add(track("c"))
	r.Add(track("a"))

	tracks := r.Tracks()
	if len(tracks) != 3 {
		t.Fatalf("Len = %d, want 3", len(tracks))
	}
	want := []string{"a", "c", "b"}
	for i, id := range want {
		if tracks[i].VideoID != id {
			t.Errorf("tracks[%d] = %s, want %s", i, tracks[i].VideoID, id)
		}
	}
}

func TestRecentEnforcesLimit(t *testing.T) {
	r := NewRecent(0)
	for i := 0; i < DefaultRecentLimit+5; i++ {
		r.Add(track(fmt.Sprintf("t%02d", i)))
	}

	tracks := r.Tracks()
	if len(tracks) != DefaultRecentLimit {
		t.Fatalf("Len = %d, want %d", len(tracks), DefaultRecentLimit)
	}
	// The newest survive, the oldest are evicted.
	if tracks[0].VideoID != fmt.Sprintf("t%02d", DefaultRecentLimit+4) {
		t.Errorf("front = %s, want newest", tracks[0].VideoID)
	}
	if tracks[len(tracks)-1].VideoID != "t05" {
		t.Errorf("back = %s, want t05", tracks[len(tracks)-1].VideoID)
	}
}

func TestRecentCustomLimit(t *testing.T) {
	r := NewRecent(3)
	for _, id := range []string{"a", "b", "c", "d"} {
		r.Add(track(id))
	}
	if r.Len() != 3 {
		t.Errorf("Len = %d, want 3", r.Len())
	}
	if got := r.Tracks()[0].VideoID; got != "d" {
		t.Errorf("front = %s, want d", got)
	}
}

func TestRecentReAddAtCapDoesNotEvict(t *testing.T) {
	r := NewRecent(3)
	for _, id := range []string{"a", "b", "c"} {
		r.Add(track(id))
	}
	r.Add(track("b"))

	tracks := r.Tracks()
	if len(tracks) != 3 {
		t.Fatalf("Len = %d, want 3", len(tracks))
	}
	want := []string{"b", "c", "a"}
	for i, id := range want {
		if tracks[i].VideoID != id {
			t.Errorf("tracks[%d] = %s, want %s", i, tracks[i].VideoID, id)
		}
	}
}
