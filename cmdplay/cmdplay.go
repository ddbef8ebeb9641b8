// Package cmdplay is a gsound.Engine that plays sound events through the
// platform's command-line audio player: afplay on macOS, paplay or aplay on
// Linux, PowerShell on Windows. Because the player decodes the media itself,
// this engine handles any format the platform player does, including the
// .oga files shipped by XDG sound themes.
package cmdplay

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/GNOME/gsound"
)

// defaultSoundDirs are searched when a play request names an event id
// instead of a file.
var defaultSoundDirs = []string{
	"/usr/share/sounds/freedesktop/stereo",
	"/usr/local/share/sounds/freedesktop/stereo",
}

// eventExtensions are tried in order when resolving an event id.
var eventExtensions = []string{".oga", ".ogg", ".wav", ".mp3"}

// proc is one in-flight player process.
type proc struct {
	cmd      *exec.Cmd
	canceled atomic.Bool
}

// Engine implements gsound.Engine by spawning an external player per play
// request.
type Engine struct {
	logger    *slog.Logger
	soundDirs []string

	command  string
	baseArgs []string

	mu       sync.Mutex
	created  bool
	defaults *gsound.Proplist
	procs    map[uint32][]*proc
}

// New returns an engine using the platform's detected audio player.
func New() *Engine {
	cmd, args := detectPlayer()
	return NewWithCommand(cmd, args)
}

// NewWithCommand returns an engine invoking command with baseArgs before the
// media path. An empty command makes every operation fail with
// CodeNotAvailable.
func NewWithCommand(command string, baseArgs []string) *Engine {
	return &Engine{
		logger:    slog.Default(),
		soundDirs: defaultSoundDirs,
		command:   command,
		baseArgs:  baseArgs,
	}
}

// Create allocates the engine state.
func (e *Engine) Create() gsound.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.created {
		return gsound.CodeState
	}
	if e.command == "" {
		return gsound.CodeNotAvailable
	}
	e.created = true
	e.defaults = &gsound.Proplist{}
	e.procs = make(map[uint32][]*proc)
	return gsound.CodeSuccess
}

// Destroy kills all in-flight player processes.
func (e *Engine) Destroy() gsound.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.created {
		return gsound.CodeState
	}
	for _, ps := range e.procs {
		for _, p := range ps {
			p.canceled.Store(true)
			if p.cmd.Process != nil {
				_ = p.cmd.Process.Kill()
			}
		}
	}
	e.created = false
	e.defaults = nil
	e.procs = nil
	return gsound.CodeSuccess
}

// Open verifies the player command is still resolvable.
func (e *Engine) Open() gsound.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.created {
		return gsound.CodeState
	}
	if _, err := exec.LookPath(e.command); err != nil {
		return gsound.CodeNotAvailable
	}
	return gsound.CodeSuccess
}

// SetDriver switches to a different player binary, looked up in PATH. The
// empty name keeps the detected player.
func (e *Engine) SetDriver(name string) gsound.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.created {
		return gsound.CodeState
	}
	if name == "" {
		return gsound.CodeSuccess
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return gsound.CodeNoDriver
	}
	e.command = path
	e.baseArgs = nil
	return gsound.CodeSuccess
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

// Play starts the player process and returns once it is running. done, when
// non-nil, is invoked from a watcher goroutine when the process exits.
func (e *Engine) Play(token uint32, pl *gsound.Proplist, done gsound.DoneFunc) gsound.Code {
	e.mu.Lock()
	if !e.created {
		e.mu.Unlock()
		return gsound.CodeState
	}
	merged := e.defaults.Merged(pl)
	command := e.command
	e.mu.Unlock()

	path, code := e.resolveMedia(merged)
	if code != gsound.CodeSuccess {
		return code
	}
	if _, err := os.Stat(path); err != nil {
		return gsound.CodeNotFound
	}

	args := e.buildArgs(path)
	cmd := exec.Command(command, args...)
	if err := cmd.Start(); err != nil {
		e.logger.Debug("player start failed", "command", command, "error", err)
		return gsound.CodeIO
	}

	p := &proc{cmd: cmd}
	e.trackProc(token, p)
	go e.wait(token, p, done)
	return gsound.CodeSuccess
}

// wait reaps the player process and reports the final code.
func (e *Engine) wait(token uint32, p *proc, done gsound.DoneFunc) {
	err := p.cmd.Wait()
	e.untrackProc(token, p)

	code := gsound.CodeSuccess
	switch {
	case p.canceled.Load():
		code = gsound.CodeCanceled
	case err != nil:
		e.logger.Debug("player exited with error", "error", err)
		code = gsound.CodeIO
	}
	if done != nil {
		done(token, code)
	}
}

// Cancel kills all player processes started under token. Each killed play
// still resolves through its completion callback with CodeCanceled.
func (e *Engine) Cancel(token uint32) gsound.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.created {
		return gsound.CodeState
	}
	for _, p := range e.procs[token] {
		p.canceled.Store(true)
		if p.cmd.Process != nil {
			_ = p.cmd.Process.Kill()
		}
	}
	return gsound.CodeSuccess
}

// Cache reads the media once to verify it exists and warm the page cache;
// the external player has no sample cache to prime.
func (e *Engine) Cache(pl *gsound.Proplist) gsound.Code {
	e.mu.Lock()
	if !e.created {
		e.mu.Unlock()
		return gsound.CodeState
	}
	merged := e.defaults.Merged(pl)
	e.mu.Unlock()

	path, code := e.resolveMedia(merged)
	if code != gsound.CodeSuccess {
		return code
	}
	if _, err := os.ReadFile(path); err != nil {
		if os.IsNotExist(err) {
			return gsound.CodeNotFound
		}
		return gsound.CodeIO
	}
	return gsound.CodeSuccess
}

// Strerror returns the fallback message table entry for code.
func (e *Engine) Strerror(code gsound.Code) string {
	return gsound.Strerror(code)
}

// resolveMedia finds the file behind a request: media.filename wins,
// otherwise event.id is looked up in the sound directories.
func (e *Engine) resolveMedia(pl *gsound.Proplist) (string, gsound.Code) {
	if path, ok := pl.Get(gsound.AttrMediaFilename); ok {
		return path, gsound.CodeSuccess
	}
	if id, ok := pl.Get(gsound.AttrEventID); ok {
		for _, dir := range e.soundDirs {
			for _, ext := range eventExtensions {
				path := filepath.Join(dir, id+ext)
				if _, err := os.Stat(path); err == nil {
					return path, gsound.CodeSuccess
				}
			}
		}
		return "", gsound.CodeNotFound
	}
	return "", gsound.CodeInvalid
}

func (e *Engine) trackProc(token uint32, p *proc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.procs != nil {
		e.procs[token] = append(e.procs[token], p)
	}
}

func (e *Engine) untrackProc(token uint32, p *proc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ps := e.procs[token]
	for i := range ps {
		if ps[i] == p {
			e.procs[token] = append(ps[:i], ps[i+1:]...)
			break
		}
	}
	if len(e.procs[token]) == 0 {
		delete(e.procs, token)
	}
}

// buildArgs constructs the player argument list for path. Windows needs the
// path interpolated into the PowerShell command line.
func (e *Engine) buildArgs(path string) []string {
	if runtime.GOOS == "windows" {
		return powershellArgs(path)
	}
	args := make([]string, 0, len(e.baseArgs)+1)
	args = append(args, e.baseArgs...)
	if path != "" {
		args = append(args, path)
	}
	return args
}

// powershellArgs wraps path in a SoundPlayer invocation. A single quote
// inside a single-quoted PowerShell string is written as two single quotes.
func powershellArgs(path string) []string {
	escaped := strings.ReplaceAll(path, "'", "''")
	return []string{"-c", fmt.Sprintf("(New-Object System.Media.SoundPlayer '%s').PlaySync()", escaped)}
}

// detectPlayer returns the platform's audio player command and base
// arguments, or an empty command if none is installed.
func detectPlayer() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		if path, err := exec.LookPath("afplay"); err == nil {
			return path, nil
		}
	case "linux":
		if path, err := exec.LookPath("paplay"); err == nil {
			return path, nil
		}
		if path, err := exec.LookPath("aplay"); err == nil {
			return path, []string{"-q"}
		}
	case "windows":
		if path, err := exec.LookPath("powershell.exe"); err == nil {
			return path, nil
		}
	}
	return "", nil
}
