// Command gen renders every demo offscreen, stepping the clock through each
// surface bucket, and saves one PNG per surface to doc/imgs/<demo>/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/prideout/surfaces"
	"github.com/prideout/surfaces/backend/opengl"
	"github.com/prideout/surfaces/shaders"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	surfaces.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	lib, err := shaders.Default()
	if err != nil {
		return fmt.Errorf("shaders: %w", err)
	}

	first, err := surfaces.LookupDemo(surfaces.DefaultDemo)
	if err != nil {
		return err
	}
	win, err := opengl.Open(first.Host, opengl.Hidden())
	if err != nil {
		return err
	}
	defer win.Close()

	outDir := filepath.Join("doc", "imgs")
	total := 0
	for _, name := range surfaces.DemoNames() {
		cfg, err := surfaces.LookupDemo(name)
		if err != nil {
			return err
		}
		cfg.Host = first.Host
		written, err := capture(win, lib, cfg, filepath.Join(outDir, name))
		if err != nil {
			return fmt.Errorf("capture %s: %w", name, err)
		}
		for _, path := range written {
			fmt.Printf("  %s\n", path)
		}
		total += len(written)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", total, outDir)
	return nil
}

// capture renders one frame per surface bucket. Demos without a selector
// get a single frame named after the demo.
func capture(win *opengl.Window, lib surfaces.SourceLookup, cfg surfaces.DemoConfig, dir string) ([]string, error) {
	dev := opengl.NewDevice()
	defer dev.Delete()

	app := surfaces.NewApp(cfg, dev, lib, surfaces.WithCapture(dir))
	win.Viewport()
	if err := app.Initialize(); err != nil {
		return nil, err
	}

	sel := cfg.Selector
	if !sel.Enabled() {
		app.Capturer().Request(cfg.Name)
		if err := win.Frame(app, 0); err != nil {
			return nil, err
		}
		return app.Capturer().Written(), nil
	}

	// Sample the middle of each bucket so float drift never lands on an edge.
	dt := sel.BucketSeconds / 2
	for range sel.Variants {
		if err := win.Frame(app, dt); err != nil {
			return nil, err
		}
		dt = sel.BucketSeconds
	}
	return app.Capturer().Written(), nil
}
