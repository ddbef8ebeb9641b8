// Package gsound plays and caches system sound events through a pluggable
// playback engine.
//
// A Context owns one connection to an engine. Initialise it, then describe
// sounds with string attributes and play them:
//
//	c := gsound.NewContext(canberra.New(), nil)
//	if err := c.Init(); err != nil {
//		// handle error
//	}
//	defer c.Close()
//
//	err := c.Play(nil, gsound.AttrEventID, "bell",
//		gsound.AttrEventDescription, "Bell rung")
//
// Play is fire-and-forget: it returns once the engine has queued the event.
// To observe completion, use PlayFull, which returns a PendingPlay resolved
// exactly once by the engine's completion callback:
//
//	p := c.PlayFull(ctx, gsound.AttrMediaFilename, "/path/to/file.wav")
//	if err := c.Finish(p); err != nil {
//		// playback failed or was canceled
//	}
//
// Cancellation is routed through a context.Context passed to the play calls.
// It is advisory: the engine is asked to cancel, and the final status still
// arrives through the completion path.
package gsound

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Config carries optional Context settings, read once at Init.
type Config struct {
	// ApplicationName and ApplicationID are committed to the engine as
	// default attributes after the handle is created. An empty name falls
	// back to the process binary name.
	ApplicationName string
	ApplicationID   string

	// Logger receives debug output for best-effort paths. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Context owns a handle to a playback engine and dispatches play and cache
// requests to it. A Context starts uninitialized; Init creates the engine
// handle and Close destroys it.
//
// Configuration methods must not be called concurrently from multiple
// goroutines; this follows the engine's own constraint.
type Context struct {
	engine Engine
	logger *slog.Logger

	appName string
	appID   string

	created bool

	mu      sync.Mutex
	watches map[context.Context]*tokenWatch
	nextTok uint32
}

// tokenWatch tracks one cancellation context while it has outstanding
// requests.
type tokenWatch struct {
	tok     uint32
	pending int
	stop    chan struct{}
}

// NewContext returns an uninitialized context bound to engine. cfg may be
// nil.
func NewContext(engine Engine, cfg *Config) *Context {
	c := &Context{
		engine:  engine,
		watches: make(map[context.Context]*tokenWatch),
	}
	if cfg != nil {
		c.appName = cfg.ApplicationName
		c.appID = cfg.ApplicationID
		c.logger = cfg.Logger
	}
	if c.appName == "" {
		c.appName = filepath.Base(os.Args[0])
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Init creates the engine handle. Idempotent: a context already holding a
// live handle succeeds without creating another. On creation failure the
// context stays uninitialized and Init may be retried.
//
// After creation the application identity attributes are committed
// best-effort; a failing commit is logged and swallowed, it does not fail
// initialization.
func (c *Context) Init() error {
	if c.created {
		return nil
	}
	if code := c.engine.Create(); code != CodeSuccess {
		return c.codeToError(code)
	}
	c.created = true

	pl := &Proplist{}
	pl.Set(AttrApplicationName, c.appName)
	if c.appID != "" {
		pl.Set(AttrApplicationID, c.appID)
	}
	if code := c.engine.ChangeProps(pl); code != CodeSuccess {
		c.logger.Debug("default attribute commit failed",
			"code", int(code), "error", c.engine.Strerror(code))
	}
	return nil
}

// Close destroys the engine handle. Only the first call reaches the engine;
// all operations after Close fail with a state error.
func (c *Context) Close() error {
	if !c.created {
		return nil
	}
	c.created = false
	return c.codeToError(c.engine.Destroy())
}

// Open connects the engine handle to its audio backend.
func (c *Context) Open() error {
	if !c.created {
		return c.stateError()
	}
	return c.codeToError(c.engine.Open())
}

// SetDriver selects the engine's output driver.
func (c *Context) SetDriver(name string) error {
	if !c.created {
		return c.stateError()
	}
	return c.codeToError(c.engine.SetDriver(name))
}

// ChangeAttrs commits alternating key/value pairs as the context's
// persistent default attributes. Defaults apply to subsequent play and cache
// calls unless overridden per call.
func (c *Context) ChangeAttrs(pairs ...string) error {
	pl, err := NewProplist(pairs...)
	if err != nil {
		return err
	}
	return c.ChangeAttrsProps(pl)
}

// ChangeAttrsMap is ChangeAttrs taking a map of attributes.
func (c *Context) ChangeAttrsMap(attrs map[string]string) error {
	return c.ChangeAttrsProps(ProplistFromMap(attrs))
}

// ChangeAttrsProps is ChangeAttrs taking an explicit property list.
func (c *Context) ChangeAttrsProps(pl *Proplist) error {
	if !c.created {
		return c.stateError()
	}
	return c.codeToError(c.engine.ChangeProps(pl))
}

// Play submits a sound event described by alternating key/value pairs and
// returns once the engine has accepted it for queuing; it does not wait for
// playback to finish. ctx carries optional cancellation and may be nil.
func (c *Context) Play(ctx context.Context, pairs ...string) error {
	pl, err := NewProplist(pairs...)
	if err != nil {
		return err
	}
	return c.PlayProps(ctx, pl)
}

// PlayProps is Play taking an explicit property list.
func (c *Context) PlayProps(ctx context.Context, pl *Proplist) error {
	if !c.created {
		return c.stateError()
	}
	tok, release := c.acquireToken(ctx)
	var done DoneFunc
	if release != nil {
		// Bookkeeping only: the completion retires the request's token
		// registration, the caller still observes nothing.
		done = func(uint32, Code) { release() }
	}
	code := c.engine.Play(tok, pl, done)
	if code != CodeSuccess && release != nil {
		release()
	}
	return c.codeToError(code)
}

// PlayFull submits a sound event and returns a PendingPlay that resolves
// when the engine reports completion. A submission failure resolves the
// returned operation with the translated error; it is observed through
// Finish or Done/Err, never through a second error path.
func (c *Context) PlayFull(ctx context.Context, pairs ...string) *PendingPlay {
	p := newPendingPlay(c)
	pl, err := NewProplist(pairs...)
	if err != nil {
		p.resolve(err)
		return p
	}
	c.playFull(ctx, pl, p)
	return p
}

// PlayFullProps is PlayFull taking an explicit property list.
func (c *Context) PlayFullProps(ctx context.Context, pl *Proplist) *PendingPlay {
	p := newPendingPlay(c)
	c.playFull(ctx, pl, p)
	return p
}

func (c *Context) playFull(ctx context.Context, pl *Proplist, p *PendingPlay) {
	if !c.created {
		p.resolve(c.stateError())
		return
	}
	tok, release := c.acquireToken(ctx)
	code := c.engine.Play(tok, pl, func(_ uint32, code Code) {
		p.resolve(c.codeToError(code))
		if release != nil {
			release()
		}
	})
	if code != CodeSuccess {
		p.resolve(c.codeToError(code))
		if release != nil {
			release()
		}
	}
}

// Finish waits for p to resolve and returns its result: nil for success or
// the delivered *Error. Finish reports an invalid-argument error if p was
// not produced by this context.
func (c *Context) Finish(p *PendingPlay) error {
	if p == nil || p.owner != c {
		return c.codeToError(CodeInvalid)
	}
	<-p.done
	return p.err
}

// Cache primes the engine's sample cache for the event described by
// alternating key/value pairs, without playing it. Synchronous.
func (c *Context) Cache(pairs ...string) error {
	pl, err := NewProplist(pairs...)
	if err != nil {
		return err
	}
	return c.CacheProps(pl)
}

// CacheProps is Cache taking an explicit property list.
func (c *Context) CacheProps(pl *Proplist) error {
	if !c.created {
		return c.stateError()
	}
	return c.codeToError(c.engine.Cache(pl))
}

// acquireToken derives the cancellation token for ctx and registers one
// outstanding request under it. The returned release must be called exactly
// once when the request resolves. A nil or non-cancellable ctx yields token
// zero, meaning uncancellable, and a nil release.
//
// A cancellation context keeps the same token while it has requests
// outstanding, so Engine.Cancel reaches all of them. One watcher goroutine
// runs per registered context, not per request; it exits, dropping the
// registry entry, once the context is canceled or the last outstanding
// request under it has resolved.
func (c *Context) acquireToken(ctx context.Context) (uint32, func()) {
	if ctx == nil || ctx.Done() == nil {
		return 0, nil
	}
	c.mu.Lock()
	w, ok := c.watches[ctx]
	if !ok {
		c.nextTok++
		w = &tokenWatch{tok: c.nextTok, stop: make(chan struct{})}
		c.watches[ctx] = w
		go c.watch(ctx, w)
	}
	w.pending++
	c.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() { c.releaseToken(ctx, w) })
	}
	return w.tok, release
}

// releaseToken retires one outstanding request under w. The last release
// drops the registry entry and stops the watcher.
func (c *Context) releaseToken(ctx context.Context, w *tokenWatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	w.pending--
	if w.pending == 0 {
		if c.watches[ctx] == w {
			delete(c.watches, ctx)
		}
		close(w.stop)
	}
}

// watch forwards cancellation of ctx to the engine as a cancel request for
// w's token. Requests already in flight when the context is canceled still
// resolve through their completion callbacks.
func (c *Context) watch(ctx context.Context, w *tokenWatch) {
	select {
	case <-ctx.Done():
		c.engine.Cancel(w.tok)
		c.mu.Lock()
		if c.watches[ctx] == w {
			delete(c.watches, ctx)
		}
		c.mu.Unlock()
	case <-w.stop:
	}
}

func (c *Context) codeToError(code Code) error {
	if code == CodeSuccess {
		return nil
	}
	return &Error{Code: code, Message: c.engine.Strerror(code)}
}

func (c *Context) stateError() error {
	return c.codeToError(CodeState)
}
