package player

import (
	"errors"
	"sync"
)

// ErrMockLoadFailed is returned by a MockInstance configured to reject
// in-place loads.
var ErrMockLoadFailed = errors.New("mock: load failed")

// MockFactory is a test double for Factory. It creates MockInstances and
// lets tests control library availability and instance behavior.
type MockFactory struct {
	mu        sync.Mutex
	available bool
	pending   []func()
	created   []*MockInstance

	// FailLoads makes every created instance reject LoadVideoByID.
	FailLoads bool
	// CreateErr, when set, is returned by Create.
	CreateErr error
}

// NewMockFactory creates a factory whose library is already available.
func NewMockFactory() *MockFactory {
	return &MockFactory{available: true}
}

// NewUnavailableMockFactory creates a factory whose library has not loaded
// yet; call BecomeAvailable to simulate the library-ready callback.
func NewUnavailableMockFactory() *MockFactory {
	return &MockFactory{}
}

func (f *MockFactory) Available() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.available
}

func (f *MockFactory) OnAvailable(fn func()) {
	f.mu.Lock()
	if f.available {
		f.mu.Unlock()
		fn()
		return
	}
	f.pending = append(f.pending, fn)
	f.mu.Unlock()
}

// BecomeAvailable marks the library as loaded and fires pending callbacks.
func (f *MockFactory) BecomeAvailable() {
	f.mu.Lock()
	f.available = true
	pending := f.pending
	f.pending = nil
	f.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

func (f *MockFactory) Create(videoID string, opts Options, events Events) (Instance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	inst := &MockInstance{
		VideoID:  videoID,
		Opts:     opts,
		events:   events,
		failLoad: f.FailLoads,
	}
	f.created = append(f.created, inst)
	return inst, nil
}

// Created returns all instances the factory has created, oldest first.
func (f *MockFactory) Created() []*MockInstance {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*MockInstance(nil), f.created...)
}

// Last returns the most recently created instance, or nil.
func (f *MockFactory) Last() *MockInstance {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.created) == 0 {
		return nil
	}
	return f.created[len(f.created)-1]
}

// MockInstance is a scripted player instance. Tests drive it by calling
// FireReady / FireStateChange / FireError and inspect the recorded calls.
type MockInstance struct {
	mu sync.Mutex

	VideoID string
	Opts    Options

	events   Events
	failLoad bool

	// Scripted query results.
	Time    float64
	Dur     float64
	TimeErr error

	// Recorded calls.
	Loads     []string
	Plays     int
	Pauses    int
	Seeks     []float64
	Volumes   []int
	Muted     bool
	Destroyed bool
}

func (m *MockInstance) LoadVideoByID(videoID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failLoad {
		return ErrMockLoadFailed
	}
	m.VideoID = videoID
	m.Loads = append(m.Loads, videoID)
	return nil
}

func (m *MockInstance) PlayVideo() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Plays++
	return nil
}

func (m *MockInstance) PauseVideo() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Pauses++
	return nil
}

func (m *MockInstance) SeekTo(seconds float64, _ bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Seeks = append(m.Seeks, seconds)
	m.Time = seconds
	return nil
}

func (m *MockInstance) SetVolume(percent int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Volumes = append(m.Volumes, percent)
	return nil
}

func (m *MockInstance) Mute() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Muted = true
	return nil
}

func (m *MockInstance) UnMute() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Muted = false
	return nil
}

func (m *MockInstance) CurrentTime() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TimeErr != nil {
		return 0, m.TimeErr
	}
	return m.Time, nil
}

func (m *MockInstance) Duration() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TimeErr != nil {
		return 0, m.TimeErr
	}
	return m.Dur, nil
}

func (m *MockInstance) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Destroyed = true
}

// FireReady invokes the ready callback.
func (m *MockInstance) FireReady() {
	if m.events.OnReady != nil {
		m.events.OnReady()
	}
}

// FireStateChange invokes the state-change callback.
func (m *MockInstance) FireStateChange(s State) {
	if m.events.OnStateChange != nil {
		m.events.OnStateChange(s)
	}
}

// FireError invokes the error callback.
func (m *MockInstance) FireError(code int) {
	if m.events.OnError != nil {
		m.events.OnError(code)
	}
}

var (
	_ Factory  = (*MockFactory)(nil)
	_ Instance = (*MockInstance)(nil)
)
