package gsound

// DoneFunc is a completion callback for a play request. The engine invokes it
// exactly once with the request token and the final status code. Invocation
// may happen on any goroutine; callers must not assume it runs on the
// goroutine that submitted the request.
type DoneFunc func(token uint32, code Code)

// Engine is the boundary to a native sound-event playback engine. A Context
// drives exactly one Engine through the paired Create/Destroy lifecycle.
//
// Engines must be safe for Cancel to be called concurrently with Play;
// configuration calls (Open, SetDriver, ChangeProps) are only ever issued
// from one goroutine at a time.
type Engine interface {
	// Create allocates the engine handle. Paired with Destroy.
	Create() Code

	// Destroy releases the engine handle. No calls are valid afterwards.
	Destroy() Code

	// Open connects the handle to its audio backend. Engines may also open
	// lazily on first play.
	Open() Code

	// SetDriver selects the output driver by name.
	SetDriver(name string) Code

	// ChangeProps merges pl into the handle's persistent default attributes.
	// Defaults apply to subsequent play and cache requests unless overridden
	// per call.
	ChangeProps(pl *Proplist) Code

	// Play submits a sound event described by pl. token identifies the
	// request for later cancellation; zero means uncancellable. A CodeSuccess
	// return means the request was queued, not that it played. If done is
	// non-nil and Play returns CodeSuccess, done is invoked exactly once,
	// asynchronously, when the request finishes; if Play fails, done is never
	// invoked.
	Play(token uint32, pl *Proplist, done DoneFunc) Code

	// Cancel requests cancellation of in-flight plays submitted under token.
	// Best effort: a canceled request still resolves through its completion
	// callback, and may still complete successfully.
	Cancel(token uint32) Code

	// Cache primes the engine's sample cache for the event described by pl
	// without playing it. Synchronous; no callback is involved.
	Cache(pl *Proplist) Code

	// Strerror translates code into a human-readable message.
	Strerror(code Code) string
}
