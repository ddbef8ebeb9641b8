//go:build linux && cgo

// Package canberra binds the libcanberra event sound library as a
// gsound.Engine. On platforms without libcanberra, or with cgo disabled, a
// stub is built instead whose operations all fail with
// gsound.CodeNotAvailable.
package canberra

/*
#cgo pkg-config: libcanberra
#include <canberra.h>
#include <stdint.h>
#include <stdlib.h>

extern void gsoundPlayDone(ca_context *c, uint32_t id, int error_code, void *userdata);

static int gsound_ca_play(ca_context *c, uint32_t id, ca_proplist *pl, uintptr_t handle)
{
	if (handle == 0)
		return ca_context_play_full(c, id, pl, NULL, NULL);
	return ca_context_play_full(c, id, pl, gsoundPlayDone, (void *) handle);
}
*/
import "C"
import (
	"runtime/cgo"
	"unsafe"

	"github.com/GNOME/gsound"
)

// Engine wraps one ca_context handle. The zero handle is allocated by Create
// and released by Destroy; libcanberra connects to the sound server lazily,
// so Open is optional before the first play.
type Engine struct {
	ca *C.ca_context
}

// New returns an engine without a handle; Create allocates it.
func New() *Engine {
	return &Engine{}
}

// Create allocates the ca_context handle.
func (e *Engine) Create() gsound.Code {
	if e.ca != nil {
		return gsound.CodeState
	}
	return gsound.Code(C.ca_context_create(&e.ca))
}

// Destroy releases the ca_context handle.
func (e *Engine) Destroy() gsound.Code {
	if e.ca == nil {
		return gsound.CodeState
	}
	code := gsound.Code(C.ca_context_destroy(e.ca))
	e.ca = nil
	return code
}

// Open connects the handle to the sound server.
func (e *Engine) Open() gsound.Code {
	if e.ca == nil {
		return gsound.CodeState
	}
	return gsound.Code(C.ca_context_open(e.ca))
}

// SetDriver selects the libcanberra output driver, e.g. "pulse" or "alsa".
func (e *Engine) SetDriver(name string) gsound.Code {
	if e.ca == nil {
		return gsound.CodeState
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return gsound.Code(C.ca_context_set_driver(e.ca, cname))
}

// ChangeProps commits pl as persistent context defaults.
func (e *Engine) ChangeProps(pl *gsound.Proplist) gsound.Code {
	if e.ca == nil {
		return gsound.CodeState
	}
	cpl, code := newProplist(pl)
	if code != gsound.CodeSuccess {
		return code
	}
	defer C.ca_proplist_destroy(cpl)
	return gsound.Code(C.ca_context_change_props_full(e.ca, cpl))
}

// Play submits a sound event. A non-nil done is parked in a cgo.Handle and
// released by the completion trampoline, or here if submission fails.
func (e *Engine) Play(token uint32, pl *gsound.Proplist, done gsound.DoneFunc) gsound.Code {
	if e.ca == nil {
		return gsound.CodeState
	}
	cpl, code := newProplist(pl)
	if code != gsound.CodeSuccess {
		return code
	}
	defer C.ca_proplist_destroy(cpl)

	var h cgo.Handle
	if done != nil {
		h = cgo.NewHandle(done)
	}
	code = gsound.Code(C.gsound_ca_play(e.ca, C.uint32_t(token), cpl, C.uintptr_t(h)))
	if code != gsound.CodeSuccess && h != 0 {
		h.Delete()
	}
	return code
}

// Cancel asks libcanberra to cancel all plays submitted under token.
func (e *Engine) Cancel(token uint32) gsound.Code {
	if e.ca == nil {
		return gsound.CodeState
	}
	return gsound.Code(C.ca_context_cancel(e.ca, C.uint32_t(token)))
}

// Cache uploads the sample described by pl into the sound server's cache.
func (e *Engine) Cache(pl *gsound.Proplist) gsound.Code {
	if e.ca == nil {
		return gsound.CodeState
	}
	cpl, code := newProplist(pl)
	if code != gsound.CodeSuccess {
		return code
	}
	defer C.ca_proplist_destroy(cpl)
	return gsound.Code(C.ca_context_cache_full(e.ca, cpl))
}

// Strerror returns libcanberra's message for code.
func (e *Engine) Strerror(code gsound.Code) string {
	return C.GoString(C.ca_strerror(C.int(code)))
}

// newProplist converts pl into a ca_proplist. The caller destroys it.
func newProplist(pl *gsound.Proplist) (*C.ca_proplist, gsound.Code) {
	var cpl *C.ca_proplist
	if code := gsound.Code(C.ca_proplist_create(&cpl)); code != gsound.CodeSuccess {
		return nil, code
	}
	for _, p := range pl.Props() {
		ckey := C.CString(p.Key)
		cval := C.CString(p.Value)
		code := gsound.Code(C.ca_proplist_sets(cpl, ckey, cval))
		C.free(unsafe.Pointer(ckey))
		C.free(unsafe.Pointer(cval))
		if code != gsound.CodeSuccess {
			C.ca_proplist_destroy(cpl)
			return nil, code
		}
	}
	return cpl, gsound.CodeSuccess
}
