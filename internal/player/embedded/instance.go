package embedded

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog/log"

	"github.com/strum-player/strum/internal/core"
	"github.com/strum-player/strum/internal/player"
)

const (
	speakerBufferSize = 250 * time.Millisecond
	downloadTimeout   = 2 * time.Minute

	volumeCurveExponent = 0.5
	minVolumeDB         = -10.0
)

var (
	speakerMu   sync.Mutex
	speakerRate beep.SampleRate
)

// initSpeaker initializes the audio output, re-initializing when the
// sample rate changes.
func initSpeaker(rate beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerRate == rate {
		return nil
	}
	if err := speaker.Init(rate, rate.N(speakerBufferSize)); err != nil {
		return err
	}
	speakerRate = rate
	return nil
}

// percentToGain maps a 0-100 volume percentage onto beep's exponential
// gain scale, perceptually flattened with a square-root curve.
func percentToGain(percent float64) float64 {
	if percent <= 0 {
		return minVolumeDB
	}
	if percent >= 100 {
		return 0
	}
	normalized := percent / 100.0
	adjusted := math.Pow(normalized, volumeCurveExponent)
	return (1.0 - adjusted) * minVolumeDB
}

// Instance plays one video's audio through the speaker. Loading is
// asynchronous: the instance fires OnReady once the audio is downloaded
// and decoded, and OnError if either step fails.
type Instance struct {
	mu sync.Mutex

	audioDir string
	events   player.Events
	opts     player.Options

	loadCancel context.CancelFunc
	streamer   beep.StreamSeekCloser
	format     beep.Format
	ctrl       *beep.Ctrl
	volume     *effects.Volume

	volumePercent int
	muted         bool
	playing       bool
	started       bool
	destroyed     bool
}

func newInstance(audioDir string, opts player.Options, events player.Events) *Instance {
	volume := opts.Volume
	if volume <= 0 || volume > 100 {
		volume = 80
	}
	return &Instance{
		audioDir:      audioDir,
		events:        events,
		opts:          opts,
		volumePercent: volume,
		muted:         opts.StartMuted,
	}
}

// LoadVideoByID switches the instance to a new video. The previous load,
// if still in flight, is abandoned.
func (i *Instance) LoadVideoByID(videoID string) error {
	i.mu.Lock()
	if i.destroyed {
		i.mu.Unlock()
		return errors.New("instance destroyed")
	}
	i.mu.Unlock()
	i.startLoad(videoID)
	return nil
}

func (i *Instance) startLoad(videoID string) {
	ctx, cancel := context.WithCancel(context.Background())

	i.mu.Lock()
	if i.loadCancel != nil {
		i.loadCancel()
	}
	i.loadCancel = cancel
	i.teardownStreamLocked()
	i.mu.Unlock()

	go i.load(ctx, videoID)
}

func (i *Instance) load(ctx context.Context, videoID string) {
	path, err := i.fetch(ctx, videoID)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Warn().Err(err).Str("video_id", videoID).Msg("audio fetch failed")
		i.fireError(player.ErrCodeNotPlayable)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		i.fireError(player.ErrCodePlayback)
		return
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		log.Warn().Err(err).Str("file", path).Msg("audio decode failed")
		i.fireError(player.ErrCodePlayback)
		return
	}
	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		log.Error().Err(err).Msg("audio output init failed")
		i.fireError(player.ErrCodePlayback)
		return
	}

	i.mu.Lock()
	if i.destroyed || ctx.Err() != nil {
		i.mu.Unlock()
		streamer.Close()
		return
	}
	i.streamer = streamer
	i.format = format

	// The callback runs inside the speaker lock; dispatch off it.
	seq := beep.Seq(streamer, beep.Callback(func() { go i.fireEnded() }))
	i.volume = &effects.Volume{
		Streamer: seq,
		Base:     2,
		Volume:   percentToGain(float64(i.volumePercent)),
		Silent:   i.muted || i.volumePercent == 0,
	}
	i.ctrl = &beep.Ctrl{Streamer: i.volume, Paused: true}
	i.started = false
	i.mu.Unlock()

	if i.events.OnReady != nil {
		i.events.OnReady()
	}
}

// fetch returns the path to the cached audio file for the video,
// downloading it with yt-dlp if not cached yet.
func (i *Instance) fetch(ctx context.Context, videoID string) (string, error) {
	path := filepath.Join(i.audioDir, videoID+".mp3")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	url := core.Track{VideoID: videoID}.WatchURL()
	log.Debug().Str("video_id", videoID).Msg("downloading audio")
	_, err := ytdlp.New().
		Quiet().
		NoWarnings().
		NoPlaylist().
		ExtractAudio().
		AudioFormat("mp3").
		Format("bestaudio/best").
		Output(filepath.Join(i.audioDir, "%(id)s.%(ext)s")).
		Run(ctx, url)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

func (i *Instance) PlayVideo() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed || i.ctrl == nil {
		return nil
	}
	if !i.started {
		speaker.Play(i.ctrl)
		i.started = true
	}
	speaker.Lock()
	i.ctrl.Paused = false
	speaker.Unlock()
	if !i.playing {
		i.playing = true
		go i.fireStateChange(player.StatePlaying)
	}
	return nil
}

func (i *Instance) PauseVideo() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed || i.ctrl == nil {
		return nil
	}
	speaker.Lock()
	i.ctrl.Paused = true
	speaker.Unlock()
	if i.playing {
		i.playing = false
		go i.fireStateChange(player.StatePaused)
	}
	return nil
}

func (i *Instance) SeekTo(seconds float64, _ bool) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed || i.streamer == nil {
		return nil
	}
	pos := i.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	if pos < 0 {
		pos = 0
	}
	if max := i.streamer.Len() - 1; max >= 0 && pos > max {
		pos = max
	}
	speaker.Lock()
	err := i.streamer.Seek(pos)
	speaker.Unlock()
	return err
}

func (i *Instance) SetVolume(percent int) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.volumePercent = percent
	if i.volume == nil {
		return nil
	}
	speaker.Lock()
	i.volume.Volume = percentToGain(float64(percent))
	i.volume.Silent = i.muted || percent == 0
	speaker.Unlock()
	return nil
}

func (i *Instance) Mute() error {
	return i.setMuted(true)
}

func (i *Instance) UnMute() error {
	return i.setMuted(false)
}

func (i *Instance) setMuted(muted bool) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.muted = muted
	if i.volume == nil {
		return nil
	}
	speaker.Lock()
	i.volume.Silent = muted || i.volumePercent == 0
	speaker.Unlock()
	return nil
}

func (i *Instance) CurrentTime() (float64, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.streamer == nil {
		return 0, errors.New("no stream loaded")
	}
	speaker.Lock()
	pos := i.streamer.Position()
	speaker.Unlock()
	return i.format.SampleRate.D(pos).Seconds(), nil
}

func (i *Instance) Duration() (float64, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.streamer == nil {
		return 0, errors.New("no stream loaded")
	}
	return i.format.SampleRate.D(i.streamer.Len()).Seconds(), nil
}

func (i *Instance) Destroy() {
	i.mu.Lock()
	if i.destroyed {
		i.mu.Unlock()
		return
	}
	i.destroyed = true
	if i.loadCancel != nil {
		i.loadCancel()
		i.loadCancel = nil
	}
	i.teardownStreamLocked()
	i.mu.Unlock()
}

// teardownStreamLocked detaches the current stream from the speaker and
// closes it. Called with i.mu held.
func (i *Instance) teardownStreamLocked() {
	if i.ctrl != nil && i.started {
		speaker.Lock()
		i.ctrl.Paused = true
		i.ctrl.Streamer = nil
		speaker.Unlock()
	}
	if i.streamer != nil {
		i.streamer.Close()
	}
	i.streamer = nil
	i.ctrl = nil
	i.volume = nil
	i.playing = false
	i.started = false
}

func (i *Instance) fireEnded() {
	i.mu.Lock()
	i.playing = false
	i.mu.Unlock()
	i.fireStateChange(player.StateEnded)
}

func (i *Instance) fireStateChange(s player.State) {
	if i.events.OnStateChange != nil {
		i.events.OnStateChange(s)
	}
}

func (i *Instance) fireError(code int) {
	if i.events.OnError != nil {
		i.events.OnError(code)
	}
}

var _ player.Instance = (*Instance)(nil)
