// Command morphdemo renders a morph between two demo shapes as a sequence of
// PNG frames.
//
// Usage:
//
//	morphdemo [flags]
//
// Frames are written to the output directory as frame-0000.png,
// frame-0001.png, and so on. Progress starts at -start, advances by -speed
// thousandths per frame and wraps around; it is mapped through a ping-pong so
// the shape morphs forward and back again.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"honnef.co/go/morph"
	"honnef.co/go/morph/raster"
)

type config struct {
	size    int
	frames  int
	speed   float64
	start   float64
	out     string
	pair    string
	debug   bool
	verbose bool
}

func main() {
	cfg := config{}
	flag.IntVar(&cfg.size, "size", 1000, "canvas width and height in pixels")
	flag.IntVar(&cfg.frames, "frames", 500, "number of frames to render")
	flag.Float64Var(&cfg.speed, "speed", 2, "progress per frame, in thousandths")
	flag.Float64Var(&cfg.start, "start", 0.3, "initial progress in [0, 1)")
	flag.StringVar(&cfg.out, "o", "frames", "output directory")
	flag.StringVar(&cfg.pair, "pair", "blob-diamond", "shapes to morph: blob-diamond, blob-triangle or triangle-diamond")
	flag.BoolVar(&cfg.debug, "debug", false, "draw handles and points")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose operation")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	if cfg.verbose {
		morph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if cfg.frames < 1 {
		return errors.New("need at least one frame")
	}
	from, to, err := demoPair(cfg.pair, float64(cfg.size))
	if err != nil {
		return err
	}
	m, err := morph.NewMorph(from, to)
	if err != nil {
		return fmt.Errorf("preparing morph: %w", err)
	}
	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	opts := raster.DefaultOptions()
	opts.Size = cfg.size
	opts.DebugHandles = cfg.debug

	t := morph.Advance(cfg.start, 0)
	for i := range cfg.frames {
		fn := filepath.Join(cfg.out, fmt.Sprintf("frame-%04d.png", i))
		if err := writeFrame(fn, m.At(morph.PingPong(t)), opts); err != nil {
			return err
		}
		morph.Logger().Debug("wrote frame", "file", fn, "progress", t)
		t = morph.Advance(t, cfg.speed/1000)
	}
	return nil
}

func writeFrame(fn string, s morph.Shape, opts raster.Options) error {
	img := raster.NewCanvas(opts)
	if err := raster.Draw(img, s, opts); err != nil {
		return fmt.Errorf("drawing %s: %w", fn, err)
	}
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", fn, err)
	}
	return f.Close()
}
