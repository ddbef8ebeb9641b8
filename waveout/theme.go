package waveout

import (
	"os"
	"path/filepath"
)

// eventExtensions are tried in order when resolving an event id to a file.
// Only formats the engine can decode itself are listed.
var eventExtensions = []string{".wav", ".mp3"}

// lookupEvent resolves an XDG event sound id, e.g. "message-new-instant", to
// a file in the configured sound directories.
func (e *Engine) lookupEvent(id string) (string, bool) {
	for _, dir := range e.soundDirs {
		for _, ext := range eventExtensions {
			path := filepath.Join(dir, id+ext)
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
	}
	return "", false
}
