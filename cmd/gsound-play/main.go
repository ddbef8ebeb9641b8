// Command gsound-play plays or caches event sounds from the command line.
//
//	gsound-play -id bell
//	gsound-play -file /usr/share/sounds/freedesktop/stereo/bell.oga -wait
//	gsound-play -backend waveout -file alert.wav -cache
//
// The application identity committed at context initialization can be set
// through GSOUND_APPLICATION_NAME and GSOUND_APPLICATION_ID, read from the
// environment or a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/GNOME/gsound"
	"github.com/GNOME/gsound/canberra"
	"github.com/GNOME/gsound/cmdplay"
	"github.com/GNOME/gsound/waveout"
)

func main() {
	backend := flag.String("backend", "canberra", "playback engine: canberra, waveout or command")
	driver := flag.String("driver", "", "output driver passed to the engine")
	file := flag.String("file", "", "sound file to play")
	id := flag.String("id", "", "XDG event sound id to play")
	desc := flag.String("description", "", "event description attribute")
	cacheOnly := flag.Bool("cache", false, "prime the engine's sample cache instead of playing")
	wait := flag.Bool("wait", false, "wait for playback to finish and report its result")
	flag.Parse()

	if *file == "" && *id == "" {
		fmt.Fprintln(os.Stderr, "gsound-play: one of -file or -id is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*backend, *driver, *file, *id, *desc, *cacheOnly, *wait); err != nil {
		fmt.Fprintln(os.Stderr, "gsound-play:", err)
		os.Exit(1)
	}
}

func run(backend, driver, file, id, desc string, cacheOnly, wait bool) error {
	// A missing .env file is fine; the variables may come from the
	// environment directly.
	_ = godotenv.Load()

	engine, err := newEngine(backend)
	if err != nil {
		return err
	}

	c := gsound.NewContext(engine, &gsound.Config{
		ApplicationName: os.Getenv("GSOUND_APPLICATION_NAME"),
		ApplicationID:   os.Getenv("GSOUND_APPLICATION_ID"),
	})
	if err := c.Init(); err != nil {
		return fmt.Errorf("initialize %s engine: %w", backend, err)
	}
	defer c.Close()

	if driver != "" {
		if err := c.SetDriver(driver); err != nil {
			return fmt.Errorf("set driver %q: %w", driver, err)
		}
	}
	if err := c.Open(); err != nil {
		return fmt.Errorf("open audio backend: %w", err)
	}

	pl := &gsound.Proplist{}
	if file != "" {
		pl.Set(gsound.AttrMediaFilename, file)
	}
	if id != "" {
		pl.Set(gsound.AttrEventID, id)
	}
	if desc != "" {
		pl.Set(gsound.AttrEventDescription, desc)
	}

	if cacheOnly {
		return c.CacheProps(pl)
	}

	// Ctrl-C cancels in-flight playback through the request token.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if wait {
		return c.Finish(c.PlayFullProps(ctx, pl))
	}
	return c.PlayProps(ctx, pl)
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
