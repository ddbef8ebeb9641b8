// Command gsound-board is an interactive sound board for trying out event
// sounds. It lists the standard XDG event ids plus any sound files found in
// a directory, plays the selection asynchronously and shows the completion
// result as it arrives, including the outcome of cancelled plays.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/GNOME/gsound"
	"github.com/GNOME/gsound/canberra"
	"github.com/GNOME/gsound/cmdplay"
	"github.com/GNOME/gsound/waveout"
)

// fileExtensions are the file types listed from -dir.
var fileExtensions = map[string]bool{
	".wav": true,
	".mp3": true,
	".oga": true,
	".ogg": true,
}

// builtinEvents are the XDG event ids offered on every board.
var builtinEvents = []string{
	"bell",
	"complete",
	"dialog-error",
	"dialog-warning",
	"message-new-instant",
	"trash-empty",
}

func main() {
	backend := flag.String("backend", "canberra", "playback engine: canberra, waveout or command")
	dir := flag.String("dir", "", "directory of sound files to add to the board")
	flag.Parse()

	if err := run(*backend, *dir); err != nil {
		fmt.Fprintln(os.Stderr, "gsound-board:", err)
		os.Exit(1)
	}
}

func run(backend, dir string) error {
	_ = godotenv.Load()

	engine, err := newEngine(backend)
	if err != nil {
		return err
	}
	snd := gsound.NewContext(engine, &gsound.Config{
		ApplicationName: "gsound-board",
		ApplicationID:   os.Getenv("GSOUND_APPLICATION_ID"),
	})
	if err := snd.Init(); err != nil {
		return fmt.Errorf("initialize %s engine: %w", backend, err)
	}
	defer snd.Close()

	items, err := buildItems(dir)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(snd, items), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newEngine(backend string) (gsound.Engine, error) {
	switch backend {
	case "canberra":
		return canberra.New(), nil
	case "waveout":
		return waveout.New(), nil
	case "command":
		return cmdplay.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// buildItems assembles the board: builtin event ids first, then sound files
// from dir, sorted by name.
func buildItems(dir string) ([]item, error) {
	var items []item
	for _, id := range builtinEvents {
		pl, _ := gsound.NewProplist(gsound.AttrEventID, id)
		items = append(items, item{label: id, attrs: pl})
	}

	if dir == "" {
		return items, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read sound directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !fileExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		pl, _ := gsound.NewProplist(gsound.AttrMediaFilename, filepath.Join(dir, name))
		items = append(items, item{label: name, attrs: pl})
	}
	return items, nil
}
