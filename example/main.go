// Example runs one of the tessellated surface demos in a window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                                # Go plus OpenGL/X11 headers
//	go run ./example/                           # ridged torus
//	go run ./example/ -demo superellipse -v     # patchless superellipses
//	go run ./example/ -config demo.toml -capture shots
//
// Escape quits. Space pauses the clock.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/prideout/surfaces"
	"github.com/prideout/surfaces/backend/opengl"
	"github.com/prideout/surfaces/shaders"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "TOML file overriding the demo preset")
		demoName   = flag.String("demo", "", "demo to run: "+strings.Join(surfaces.DemoNames(), ", "))
		captureDir = flag.String("capture", "", "write a PNG per surface change into this directory")
		texture    = flag.String("texture", "", "image bound to the demo's texture sampler")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	surfaces.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadDemo(*configPath, *demoName)
	if err != nil {
		return err
	}

	lib, err := shaders.Default()
	if err != nil {
		return fmt.Errorf("shaders: %w", err)
	}

	var opts []surfaces.AppOption
	if *captureDir != "" {
		opts = append(opts, surfaces.WithCapture(*captureDir))
	}
	if *texture != "" {
		opts = append(opts, surfaces.WithTexture(*texture))
	}

	dev := opengl.NewDevice()
	app := surfaces.NewApp(cfg, dev, lib, opts...)

	win, err := opengl.Open(app.Config())
	if err != nil {
		return err
	}
	defer win.Close()
	defer dev.Delete()

	return win.Run(app)
}

// loadDemo resolves the preset. A -demo flag wins over the file's demo key.
func loadDemo(configPath, name string) (surfaces.DemoConfig, error) {
	if configPath == "" {
		return surfaces.LookupDemo(name)
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return surfaces.DemoConfig{}, fmt.Errorf("read config: %w", err)
	}
	fc, err := surfaces.ParseConfig(data)
	if err != nil {
		return surfaces.DemoConfig{}, fmt.Errorf("%s: %w", configPath, err)
	}
	if name != "" {
		fc.Demo = name
	}
	return fc.Resolve()
}
