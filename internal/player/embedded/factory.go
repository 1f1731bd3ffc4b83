// Package embedded implements the player backend that plays YouTube audio
// locally: yt-dlp resolves and downloads the audio track, beep decodes and
// plays it through the system speaker.
package embedded

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog/log"

	apperrors "github.com/strum-player/strum/internal/errors"
	"github.com/strum-player/strum/internal/player"
)

const installTimeout = 5 * time.Minute

// Factory creates embedded player instances. The backend is available once
// a yt-dlp binary can be found; when it is missing, the factory downloads
// one in the background and fires the registered callbacks when it lands.
type Factory struct {
	mu         sync.Mutex
	available  bool
	installing bool
	pending    []func()
	audioDir   string
}

// NewFactory creates a factory caching downloaded audio under audioDir.
// An empty audioDir uses the user cache directory.
func NewFactory(audioDir string) *Factory {
	if audioDir == "" {
		if userCache, err := os.UserCacheDir(); err == nil {
			audioDir = filepath.Join(userCache, "strum", "audio")
		} else {
			audioDir = filepath.Join(os.TempDir(), "strum", "audio")
		}
	}
	f := &Factory{audioDir: audioDir}
	if _, err := exec.LookPath("yt-dlp"); err == nil {
		f.available = true
	}
	return f
}

// Available reports whether the yt-dlp resolver is usable.
func (f *Factory) Available() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.available
}

// OnAvailable registers fn to run once the resolver is usable. If it
// already is, fn runs synchronously. Otherwise a background install of
// yt-dlp is kicked off and fn runs when it completes.
func (f *Factory) OnAvailable(fn func()) {
	f.mu.Lock()
	if f.available {
		f.mu.Unlock()
		fn()
		return
	}
	f.pending = append(f.pending, fn)
	if f.installing {
		f.mu.Unlock()
		return
	}
	f.installing = true
	f.mu.Unlock()

	go f.install()
}

func (f *Factory) install() {
	ctx, cancel := context.WithTimeout(context.Background(), installTimeout)
	defer cancel()

	log.Info().Msg("yt-dlp not found, downloading")
	_, err := ytdlp.Install(ctx, nil)

	f.mu.Lock()
	f.installing = false
	if err != nil {
		f.mu.Unlock()
		log.Error().Err(err).Msg("yt-dlp install failed")
		return
	}
	f.available = true
	pending := f.pending
	f.pending = nil
	f.mu.Unlock()

	log.Info().Msg("yt-dlp installed")
	for _, fn := range pending {
		fn()
	}
}

// Create creates an instance and starts loading the given video.
func (f *Factory) Create(videoID string, opts player.Options, events player.Events) (player.Instance, error) {
	if !f.Available() {
		return nil, apperrors.ErrResolverMissing
	}
	if err := os.MkdirAll(f.audioDir, 0o755); err != nil {
		return nil, err
	}
	inst := newInstance(f.audioDir, opts, events)
	inst.startLoad(videoID)
	return inst, nil
}

var _ player.Factory = (*Factory)(nil)
