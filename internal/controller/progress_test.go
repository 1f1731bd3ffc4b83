package controller

import (
	"errors"
	"testing"
	"time"

	"github.com/strum-player/strum/internal/player"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestProgressLoopSamplesPosition(t *testing.T) {
	f := player.NewMockFactory()
	c := newTestController(f)
	defer c.Close()

	c.PlayTrack(trk("a"), nil)
	inst := f.Last()
	inst.Time = 30
	inst.Dur = 120
	inst.FireReady()

	ok := waitFor(t, time.Second, func() bool {
		s := c.State()
		return s.CurrentTime == 30 && s.Duration == 120
	})
	if !ok {
		s := c.State()
		t.Fatalf("position not sampled: time=%v dur=%v", s.CurrentTime, s.Duration)
	}
	if got := c.State().Progress; got != 25 {
		t.Errorf("Progress = %v, want 25", got)
	}
}

func TestProgressLoopStopsOnPause(t *testing.T) {
	f := player.NewMockFactory()
	c := newTestController(f)
	defer c.Close()

	c.PlayTrack(trk("a"), nil)
	inst := f.Last()
	inst.Time = 10
	inst.Dur = 100
	inst.FireReady()

	if !waitFor(t, time.Second, func() bool { return c.State().CurrentTime == 10 }) {
		t.Fatal("initial sample never arrived")
	}

	inst.FireStateChange(player.StatePaused)
	// Give any in-flight tick time to drain, then move the scripted
	// position; a still-running loop would pick it up.
	time.Sleep(30 * time.Millisecond)
	inst.SeekTo(55, true)
	time.Sleep(50 * time.Millisecond)

	if got := c.State().CurrentTime; got != 10 {
		t.Errorf("CurrentTime = %v after pause, want 10 (loop should be stopped)", got)
	}
}

func TestProgressLoopResumesOnPlaying(t *testing.T) {
	f := player.NewMockFactory()
	c := newTestController(f)
	defer c.Close()

	c.PlayTrack(trk("a"), nil)
	inst := f.Last()
	inst.Time = 10
	inst.Dur = 100
	inst.FireReady()
	inst.FireStateChange(player.StatePaused)
	time.Sleep(30 * time.Millisecond)

	inst.SeekTo(42, true)
	inst.FireStateChange(player.StatePlaying)

	if !waitFor(t, time.Second, func() bool { return c.State().CurrentTime == 42 }) {
		t.Errorf("CurrentTime = %v, want 42 after resume", c.State().CurrentTime)
	}
}

func TestProgressSampleSkipsQueryErrors(t *testing.T) {
	f := player.NewMockFactory()
	c := newTestController(f)
	defer c.Close()

	c.PlayTrack(trk("a"), nil)
	inst := f.Last()
	inst.Time = 10
	inst.Dur = 100
	inst.TimeErr = errors.New("player gone")
	inst.FireReady()

	sampleNow(c)
	if got := c.State().CurrentTime; got != 0 {
		t.Errorf("CurrentTime = %v, want 0 (failed sample skipped)", got)
	}

	// The next tick retries; once the query recovers the sample lands.
	inst.TimeErr = nil
	sampleNow(c)
	if got := c.State().CurrentTime; got != 10 {
		t.Errorf("CurrentTime = %v, want 10 after recovery", got)
	}
}

func TestProgressSampleIgnoresZeroDuration(t *testing.T) {
	f := player.NewMockFactory()
	c := newTestController(f)
	defer c.Close()

	c.PlayTrack(trk("a"), nil)
	inst := f.Last()
	inst.Time = 5
	inst.FireReady()

	sampleNow(c)
	s := c.State()
	if s.CurrentTime != 0 || s.Progress != 0 {
		t.Errorf("sample with zero duration applied: time=%v progress=%v", s.CurrentTime, s.Progress)
	}
}

func TestProgressLoopStopsOnClose(t *testing.T) {
	f := player.NewMockFactory()
	c := newTestController(f)

	c.PlayTrack(trk("a"), nil)
	inst := f.Last()
	inst.Time = 10
	inst.Dur = 100
	inst.FireReady()

	if !waitFor(t, time.Second, func() bool { return c.State().CurrentTime == 10 }) {
		t.Fatal("initial sample never arrived")
	}

	c.Close()
	inst.SeekTo(77, true)
	time.Sleep(50 * time.Millisecond)

	if got := c.State().CurrentTime; got != 10 {
		t.Errorf("CurrentTime = %v after Close, want 10", got)
	}
}

func TestStaleSampleFromReplacedInstanceIgnored(t *testing.T) {
	f := player.NewMockFactory()
	f.FailLoads = true
	c := newTestController(f)
	defer c.Close()

	c.PlayTrack(trk("a"), nil)
	first := f.Last()
	first.Time = 10
	first.Dur = 100
	first.FireReady()
	c.mu.Lock()
	staleGen := c.instGen
	c.mu.Unlock()

	c.PlayTrack(trk("b"), nil)

	// A sample tagged with the replaced instance's generation must not
	// write into the state.
	c.sampleProgress(staleGen)
	if got := c.State().CurrentTime; got != 0 {
		t.Errorf("CurrentTime = %v, want 0 (stale sample discarded)", got)
	}
}

func TestProgressEventsDelivered(t *testing.T) {
	f := player.NewMockFactory()
	c := newTestController(f)
	defer c.Close()

	sub := c.Subscribe()
	defer c.Unsubscribe(sub)

	c.PlayTrack(trk("a"), nil)
	inst := f.Last()
	inst.Time = 60
	inst.Dur = 240
	inst.FireReady()

	select {
	case e := <-sub.ProgressChanged:
		if e.CurrentTime != 60 || e.Duration != 240 || e.Percent != 25 {
			t.Errorf("progress event = %+v, want 60/240 at 25%%", e)
		}
	case <-time.After(time.Second):
		t.Error("no progress event delivered")
	}
}
