package controller

const eventBufferSize = 16

// Subscription provides event channels for a subscriber. Events are
// delivered best-effort: a subscriber that falls behind loses events rather
// than blocking the controller.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	ProgressChanged <-chan ProgressChange
	ModeChanged     <-chan ModeChange
	VolumeChanged   <-chan VolumeChange
	LikeChanged     <-chan LikeChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	stateCh    chan StateChange
	trackCh    chan TrackChange
	progressCh chan ProgressChange
	modeCh     chan ModeChange
	volumeCh   chan VolumeChange
	likeCh     chan LikeChange
	errorCh    chan ErrorEvent
	doneCh     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:    make(chan StateChange, eventBufferSize),
		trackCh:    make(chan TrackChange, eventBufferSize),
		progressCh: make(chan ProgressChange, eventBufferSize),
		modeCh:     make(chan ModeChange, eventBufferSize),
		volumeCh:   make(chan VolumeChange, eventBufferSize),
		likeCh:     make(chan LikeChange, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.TrackChanged = s.trackCh
	s.ProgressChanged = s.progressCh
	s.ModeChanged = s.modeCh
	s.VolumeChanged = s.volumeCh
	s.LikeChanged = s.likeCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
	}
}

func (s *Subscription) sendTrack(e TrackChange) {
	select {
	case s.trackCh <- e:
	default:
	}
}

func (s *Subscription) sendProgress(e ProgressChange) {
	select {
	case s.progressCh <- e:
	default:
	}
}

func (s *Subscription) sendMode(e ModeChange) {
	select {
	case s.modeCh <- e:
	default:
	}
}

func (s *Subscription) sendVolume(e VolumeChange) {
	select {
	case s.volumeCh <- e:
	default:
	}
}

func (s *Subscription) sendLike(e LikeChange) {
	select {
	case s.likeCh <- e:
	default:
	}
}

func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
