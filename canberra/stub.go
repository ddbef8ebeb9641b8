//go:build !linux || !cgo

// Package canberra binds the libcanberra event sound library as a
// gsound.Engine. This build lacks libcanberra (non-Linux target or cgo
// disabled); every operation reports gsound.CodeNotAvailable so contexts
// fail fast at Init.
package canberra

import "github.com/GNOME/gsound"

// Engine is the unavailable-libcanberra stub.
type Engine struct{}

// New returns the stub engine.
func New() *Engine {
	return &Engine{}
}

func (*Engine) Create() gsound.Code                      { return gsound.CodeNotAvailable }
func (*Engine) Destroy() gsound.Code                     { return gsound.CodeNotAvailable }
func (*Engine) Open() gsound.Code                        { return gsound.CodeNotAvailable }
func (*Engine) SetDriver(string) gsound.Code             { return gsound.CodeNotAvailable }
func (*Engine) ChangeProps(*gsound.Proplist) gsound.Code { return gsound.CodeNotAvailable }

func (*Engine) Play(uint32, *gsound.Proplist, gsound.DoneFunc) gsound.Code {
	return gsound.CodeNotAvailable
}

func (*Engine) Cancel(uint32) gsound.Code          { return gsound.CodeNotAvailable }
func (*Engine) Cache(*gsound.Proplist) gsound.Code { return gsound.CodeNotAvailable }

func (*Engine) Strerror(code gsound.Code) string {
	return gsound.Strerror(code)
}
