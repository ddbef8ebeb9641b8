// Package waveout is a pure Go gsound.Engine. It decodes sound files itself
// (wav, mp3), resolves event ids against XDG sound theme directories and
// plays through the oto audio library. It is the fallback for hosts without
// libcanberra.
package waveout

import (
	"bytes"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/GNOME/gsound"
)

const (
	// Output format of the oto context. Decoded samples are converted to
	// this format up front.
	outputRate     = 44100
	outputChannels = 2

	// Poll interval for playback completion.
	pollInterval = 10 * time.Millisecond
)

// defaultSoundDirs are searched when a play request names an event id
// instead of a file.
var defaultSoundDirs = []string{
	"/usr/share/sounds/freedesktop/stereo",
	"/usr/local/share/sounds/freedesktop/stereo",
}

// playback is one in-flight play request.
type playback struct {
	cancel chan struct{}
	once   sync.Once
}

// requestCancel closes the cancel channel. Later calls are no-ops.
func (pb *playback) requestCancel() {
	pb.once.Do(func() {
		close(pb.cancel)
	})
}

// Engine implements gsound.Engine without native dependencies. The audio
// device is opened lazily, on Open or on the first play.
type Engine struct {
	logger    *slog.Logger
	soundDirs []string

	mu       sync.Mutex
	created  bool
	otoCtx   *oto.Context
	otoReady chan struct{}
	defaults *gsound.Proplist
	cache    *sampleCache
	inflight map[uint32][]*playback
}

// New returns an engine resolving event ids against the default XDG sound
// theme directories.
func New() *Engine {
	return NewWithDirs(defaultSoundDirs)
}

// NewWithDirs returns an engine resolving event ids against dirs.
func NewWithDirs(dirs []string) *Engine {
	return &Engine{
		logger:    slog.Default(),
		soundDirs: dirs,
	}
}

// Create allocates the engine state. The audio device is not touched yet.
func (e *Engine) Create() gsound.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.created {
		return gsound.CodeState
	}
	e.created = true
	e.defaults = &gsound.Proplist{}
	e.cache = newSampleCache()
	e.inflight = make(map[uint32][]*playback)
	return gsound.CodeSuccess
}

// Destroy cancels all in-flight playbacks and drops the sample cache. The
// oto context itself has no teardown call and is left to the runtime.
func (e *Engine) Destroy() gsound.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.created {
		return gsound.CodeState
	}
	for _, pbs := range e.inflight {
		for _, pb := range pbs {
			pb.requestCancel()
		}
	}
	e.created = false
	e.defaults = nil
	e.cache = nil
	e.inflight = nil
	return gsound.CodeSuccess
}

// Open opens the audio device.
func (e *Engine) Open() gsound.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.created {
		return gsound.CodeState
	}
	return e.openLocked()
}

func (e *Engine) openLocked() gsound.Code {
	if e.otoCtx != nil {
		return gsound.CodeSuccess
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   outputRate,
		ChannelCount: outputChannels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		e.logger.Debug("audio device open failed", "error", err)
		return gsound.CodeNotAvailable
	}
	e.otoCtx = ctx
	e.otoReady = ready
	return gsound.CodeSuccess
}

// SetDriver accepts only the engine's own name; there is a single output
// path.
func (e *Engine) SetDriver(name string) gsound.Code {
	if name == "" || name == "waveout" {
		return gsound.CodeSuccess
	}
	return gsound.CodeNotAvailable
}

// ChangeProps merges pl into the persistent defaults.
func (e *Engine) ChangeProps(pl *gsound.Proplist) gsound.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.created {
		return gsound.CodeState
	}
	e.defaults = e.defaults.Merged(pl)
	return gsound.CodeSuccess
}

// Play decodes the event's media and starts playback on its own goroutine.
// done, when non-nil, is invoked from that goroutine once playback finishes
// or is canceled.
func (e *Engine) Play(token uint32, pl *gsound.Proplist, done gsound.DoneFunc) gsound.Code {
	e.mu.Lock()
	if !e.created {
		e.mu.Unlock()
		return gsound.CodeState
	}
	if code := e.openLocked(); code != gsound.CodeSuccess {
		e.mu.Unlock()
		return code
	}
	merged := e.defaults.Merged(pl)
	cache := e.cache
	e.mu.Unlock()

	path, code := e.resolveMedia(merged)
	if code != gsound.CodeSuccess {
		return code
	}

	var s *sample
	var err error
	if cc, _ := merged.Get(gsound.AttrCacheControl); cc == "never" {
		s, err = decodeFile(path)
	} else {
		s, err = cache.get(path)
	}
	if err != nil {
		e.logger.Debug("media decode failed", "path", path, "error", err)
		return decodeCode(err)
	}

	pb := &playback{cancel: make(chan struct{})}
	e.track(token, pb)
	go e.run(token, pb, s, done)
	return gsound.CodeSuccess
}

// run plays s to completion or cancellation and reports the final code.
func (e *Engine) run(token uint32, pb *playback, s *sample, done gsound.DoneFunc) {
	<-e.otoReady

	player := e.otoCtx.NewPlayer(bytes.NewReader(s.data))
	player.Play()

	code := gsound.CodeSuccess
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
loop:
	for {
		select {
		case <-pb.cancel:
			code = gsound.CodeCanceled
			break loop
		case <-ticker.C:
			if !player.IsPlaying() {
				break loop
			}
		}
	}
	if err := player.Close(); err != nil && code == gsound.CodeSuccess {
		e.logger.Debug("player close failed", "error", err)
		code = gsound.CodeIO
	}

	e.untrack(token, pb)
	if done != nil {
		done(token, code)
	}
}

// Cancel stops all in-flight playbacks under token. The playbacks still
// resolve through their completion callbacks with CodeCanceled.
func (e *Engine) Cancel(token uint32) gsound.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.created {
		return gsound.CodeState
	}
	for _, pb := range e.inflight[token] {
		pb.requestCancel()
	}
	return gsound.CodeSuccess
}

// Cache decodes the event's media into the sample cache without playing it.
func (e *Engine) Cache(pl *gsound.Proplist) gsound.Code {
	e.mu.Lock()
	if !e.created {
		e.mu.Unlock()
		return gsound.CodeState
	}
	merged := e.defaults.Merged(pl)
	cache := e.cache
	e.mu.Unlock()

	path, code := e.resolveMedia(merged)
	if code != gsound.CodeSuccess {
		return code
	}
	if _, err := cache.get(path); err != nil {
		e.logger.Debug("cache decode failed", "path", path, "error", err)
		return decodeCode(err)
	}
	return gsound.CodeSuccess
}

// Strerror returns the fallback message table entry for code.
func (e *Engine) Strerror(code gsound.Code) string {
	return gsound.Strerror(code)
}

// resolveMedia finds the file behind a request: media.filename wins,
// otherwise event.id is looked up in the theme directories.
func (e *Engine) resolveMedia(pl *gsound.Proplist) (string, gsound.Code) {
	if path, ok := pl.Get(gsound.AttrMediaFilename); ok {
		return path, gsound.CodeSuccess
	}
	if id, ok := pl.Get(gsound.AttrEventID); ok {
		if path, ok := e.lookupEvent(id); ok {
			return path, gsound.CodeSuccess
		}
		return "", gsound.CodeNotFound
	}
	return "", gsound.CodeInvalid
}

func (e *Engine) track(token uint32, pb *playback) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inflight != nil {
		e.inflight[token] = append(e.inflight[token], pb)
	}
}

func (e *Engine) untrack(token uint32, pb *playback) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pbs := e.inflight[token]
	for i := range pbs {
		if pbs[i] == pb {
			e.inflight[token] = append(pbs[:i], pbs[i+1:]...)
			break
		}
	}
	if len(e.inflight[token]) == 0 {
		delete(e.inflight, token)
	}
}

// decodeCode maps a decode error to the engine taxonomy.
func decodeCode(err error) gsound.Code {
	if os.IsNotExist(err) {
		return gsound.CodeNotFound
	}
	return gsound.CodeIO
}
