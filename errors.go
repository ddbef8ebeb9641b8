package gsound

import (
	"errors"
	"fmt"
)

// Code is a status code reported by a playback engine. Zero is success; the
// negative values mirror the native engine's error numbering.
type Code int

const (
	CodeSuccess      Code = 0
	CodeNotSupported Code = -1
	CodeInvalid      Code = -2
	CodeState        Code = -3
	CodeOOM          Code = -4
	CodeNoDriver     Code = -5
	CodeSystem       Code = -6
	CodeCorrupt      Code = -7
	CodeTooBig       Code = -8
	CodeNotFound     Code = -9
	CodeDestroyed    Code = -10
	CodeCanceled     Code = -11
	CodeNotAvailable Code = -12
	CodeAccess       Code = -13
	CodeIO           Code = -14
	CodeInternal     Code = -15
	CodeDisabled     Code = -16
	CodeForked       Code = -17
	CodeDisconnected Code = -18
)

// ErrMissingValue reports an attribute list in which a key is not followed by
// a value. It originates in the binding and never reaches the engine.
var ErrMissingValue = errors.New("malformed attribute list: missing value")

var strerrors = map[Code]string{
	CodeSuccess:      "Success",
	CodeNotSupported: "Operation not supported",
	CodeInvalid:      "Invalid argument",
	CodeState:        "Invalid state",
	CodeOOM:          "Out of memory",
	CodeNoDriver:     "No such driver",
	CodeSystem:       "System error",
	CodeCorrupt:      "File or data corrupt",
	CodeTooBig:       "Data too large",
	CodeNotFound:     "File or data not found",
	CodeDestroyed:    "Destroyed",
	CodeCanceled:     "Canceled",
	CodeNotAvailable: "Not available",
	CodeAccess:       "Access forbidden",
	CodeIO:           "IO error",
	CodeInternal:     "Internal error",
	CodeDisabled:     "Sound disabled",
	CodeForked:       "Process forked",
	CodeDisconnected: "Disconnected from sound server",
}

// Strerror returns a human-readable message for code. Engines without a
// native status-to-string facility use this table.
func Strerror(code Code) string {
	if msg, ok := strerrors[code]; ok {
		return msg
	}
	return fmt.Sprintf("Unknown error code %d", int(code))
}

// Error is a failure reported by the playback engine, carrying the native
// status code and the engine's message for it.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
