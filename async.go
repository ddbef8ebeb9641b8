package gsound

import "sync"

// PendingPlay is the caller-visible handle for an in-flight asynchronous play
// request. It resolves exactly once, either when the engine's completion
// callback delivers a status or when submission itself failed.
//
// Cancellation never resolves a PendingPlay directly: it is forwarded to the
// engine as a cancel request, and the resolution still arrives through the
// normal completion path. A canceled request may therefore still resolve
// successfully if the engine finished first.
type PendingPlay struct {
	owner *Context

	done chan struct{}
	once sync.Once
	err  error
}

func newPendingPlay(owner *Context) *PendingPlay {
	return &PendingPlay{
		owner: owner,
		done:  make(chan struct{}),
	}
}

// resolve records the terminal result and releases waiters. Only the first
// call has any effect.
func (p *PendingPlay) resolve(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// Done returns a channel that is closed once the request has resolved.
func (p *PendingPlay) Done() <-chan struct{} {
	return p.done
}

// Err returns the terminal error, nil for success. Only meaningful after
// Done's channel is closed; before that it always returns nil.
func (p *PendingPlay) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}
