// Package player defines the contract of the external streaming player.
//
// The player is an opaque capability: instances are created asynchronously
// (completion is signaled through the ready event, not the return value) and
// report playback transitions through event callbacks. The playback
// controller consumes this contract and never reaches past it.
package player

// State is a playback state reported by a player instance through its
// state-change event. Values mirror the external widget's numeric states.
type State int

const (
	StateUnstarted State = -1
	StateEnded     State = 0
	StatePlaying   State = 1
	StatePaused    State = 2
	StateBuffering State = 3
	StateCued      State = 5
)

func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "UNSTARTED"
	case StateEnded:
		return "ENDED"
	case StatePlaying:
		return "PLAYING"
	case StatePaused:
		return "PAUSED"
	case StateBuffering:
		return "BUFFERING"
	case StateCued:
		return "CUED"
	default:
		return "UNKNOWN"
	}
}

// Error codes surfaced through the error event.
const (
	ErrCodeInvalidParam = 2
	ErrCodePlayback     = 5
	ErrCodeNotFound     = 100
	ErrCodeNotPlayable  = 101
)

// Events holds the callbacks an instance fires. Callbacks may be invoked
// from arbitrary goroutines; receivers are responsible for their own
// serialization. Nil callbacks are ignored.
type Events struct {
	OnReady       func()
	OnStateChange func(State)
	OnError       func(code int)
}

// Options configures instance creation.
type Options struct {
	Autoplay   bool
	StartMuted bool
	Volume     int // 0-100
}

// Instance is a live player instance. Operations issued before the ready
// event fires may be silently discarded by the implementation.
type Instance interface {
	// LoadVideoByID loads a new video into the existing instance, replacing
	// whatever was playing. Returns an error if the instance can no longer
	// accept loads, in which case the caller should discard it and create
	// a fresh instance.
	LoadVideoByID(videoID string) error

	PlayVideo() error
	PauseVideo() error
	SeekTo(seconds float64, allowSeekAhead bool) error

	SetVolume(percent int) error
	Mute() error
	UnMute() error

	CurrentTime() (float64, error)
	Duration() (float64, error)

	// Destroy releases the instance. No events fire after Destroy returns.
	Destroy()
}

// Factory creates player instances. The underlying player library may load
// asynchronously; Available reports whether it is usable now, and
// OnAvailable registers a one-shot callback for when it becomes usable.
type Factory interface {
	Available() bool
	OnAvailable(fn func())
	Create(videoID string, opts Options, events Events) (Instance, error)
}
