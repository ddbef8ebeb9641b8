//go:build linux && cgo

package canberra

/*
#include <canberra.h>
*/
import "C"
import (
	"runtime/cgo"
	"unsafe"

	"github.com/GNOME/gsound"
)

// gsoundPlayDone is the completion trampoline registered with
// ca_context_play_full. libcanberra invokes it exactly once per accepted
// request, on a thread of its own choosing.
//
//export gsoundPlayDone
func gsoundPlayDone(ca *C.ca_context, id C.uint32_t, errorCode C.int, userdata unsafe.Pointer) {
	h := cgo.Handle(uintptr(userdata))
	done := h.Value().(gsound.DoneFunc)
	h.Delete()
	done(uint32(id), gsound.Code(errorCode))
}
