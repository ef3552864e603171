package surfaces

import (
	"errors"
	"fmt"
)

// Application is the contract between a demo and its host. The host calls
// Config, then Initialize once a GL context is current, then alternates
// Update and Render once per displayed frame.
type Application interface {
	Config() HostConfig
	Initialize() error
	Update(dt float32)
	Render() error
}

// App runs one DemoConfig on a Device.
type App struct {
	cfg    DemoConfig
	dev    Device
	source SourceLookup

	scene    *Scene
	camera   *Camera
	program  uint32
	draw     DrawCall
	selector *Selector
	capturer *Capturer

	paused      bool
	initialized bool
}

// AppOption configures an App.
type AppOption func(*App)

// WithCapture enables one screenshot per surface transition, written to dir.
func WithCapture(dir string) AppOption {
	return func(a *App) {
		a.cfg.Capture = true
		if dir != "" {
			a.cfg.CaptureDir = dir
		}
	}
}

// WithTexture binds the image at path to the demo's texture sampler.
func WithTexture(path string) AppOption {
	return func(a *App) { a.cfg.Texture = path }
}

// NewApp creates an App. No GPU work happens until Initialize.
func NewApp(cfg DemoConfig, dev Device, source SourceLookup, opts ...AppOption) *App {
	a := &App{
		cfg:    cfg,
		dev:    dev,
		source: source,
		scene:  NewScene(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.camera = NewCamera(a.cfg.Camera)
	return a
}

// Config implements Application.
func (a *App) Config() HostConfig { return a.cfg.Host }

// Demo returns the demo configuration.
func (a *App) Demo() DemoConfig { return a.cfg }

// Scene returns the live scene state.
func (a *App) Scene() *Scene { return a.scene }

// Program returns the linked program handle.
func (a *App) Program() uint32 { return a.program }

// Selector returns the surface selector; nil before Initialize.
func (a *App) Selector() *Selector { return a.selector }

// Capturer returns the frame capturer; nil before Initialize.
func (a *App) Capturer() *Capturer { return a.capturer }

// Paused reports whether the clock is stopped.
func (a *App) Paused() bool { return a.paused }

// SetPaused stops or resumes the clock.
func (a *App) SetPaused(p bool) { a.paused = p }

// Initialize implements Application. It builds the program, the geometry,
// the optional texture and the selector, in that order.
func (a *App) Initialize() error {
	program, err := AssembleProgram(a.dev, a.source, a.cfg.Stages)
	if err != nil {
		return fmt.Errorf("%s: %w", a.cfg.Name, err)
	}
	a.program = program
	a.scene.Projection = a.camera.Projection(a.cfg.Host.Aspect())

	a.draw, err = SupplyGeometry(a.dev, program, a.cfg.Geometry)
	if err != nil {
		return fmt.Errorf("%s: geometry: %w", a.cfg.Name, err)
	}
	if a.draw.Indexed {
		a.scene.IndexCount = a.draw.Count
	}

	if a.cfg.Texture != "" {
		img, err := LoadTexture(a.cfg.Texture)
		if err != nil {
			return fmt.Errorf("%s: %w", a.cfg.Name, err)
		}
		if err := a.dev.CreateTexture(program, a.cfg.TextureSampler, img); err != nil {
			return fmt.Errorf("%s: texture: %w", a.cfg.Name, err)
		}
	}

	a.selector, err = NewSelector(a.dev, program, a.cfg.Selector)
	if err != nil {
		return fmt.Errorf("%s: selector: %w", a.cfg.Name, err)
	}
	a.capturer = NewCapturer(a.dev, a.cfg.Capture, a.cfg.CaptureDir)

	a.dev.Prepare(a.cfg.ClearColor)
	a.camera.Update(a.scene, 0)

	if err := a.dev.Err(); err != nil {
		return fmt.Errorf("%s: initialize: %w", a.cfg.Name, err)
	}
	a.initialized = true
	return nil
}

// Update implements Application.
func (a *App) Update(dt float32) {
	if a.paused {
		dt = 0
	}
	a.camera.Update(a.scene, dt)
}

// Render implements Application.
func (a *App) Render() error {
	if !a.initialized {
		return errors.New("render called before initialize")
	}

	changed, err := a.selector.Update(a.scene.Time)
	if err != nil {
		return fmt.Errorf("%s: %w", a.cfg.Name, err)
	}
	if changed {
		v, _ := a.selector.Active()
		a.capturer.Request(v.Name)
	}

	a.dev.SetUniforms(a.program, a.scene.Uniforms())
	a.dev.Clear()
	a.dev.Draw(a.draw)

	if err := a.capturer.Flush(); err != nil {
		return fmt.Errorf("%s: %w", a.cfg.Name, err)
	}
	return nil
}
