package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/prideout/surfaces"
)

// Pauser is implemented by applications whose clock can be stopped from
// the keyboard.
type Pauser interface {
	Paused() bool
	SetPaused(bool)
}

// Window is a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	win *glfw.Window
	cfg surfaces.HostConfig
}

type windowOptions struct {
	hidden bool
}

// WindowOption configures Open.
type WindowOption func(*windowOptions)

// Hidden opens the window invisible, for offscreen rendering.
func Hidden() WindowOption {
	return func(o *windowOptions) { o.hidden = true }
}

// Open initializes GLFW, creates the window described by cfg and loads the
// GL entry points. The caller must be on the main thread and must call
// Close when done.
func Open(cfg surfaces.HostConfig, opts ...WindowOption) (*Window, error) {
	var o windowOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Multisample {
		glfw.WindowHint(glfw.Samples, 4)
	}
	if o.hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	surfaces.Logger().Info("context created",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"width", cfg.Width, "height", cfg.Height)

	return &Window{win: win, cfg: cfg}, nil
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

// Viewport sizes the GL viewport to the framebuffer.
func (w *Window) Viewport() {
	fw, fh := w.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))
}

// Frame renders one frame of app and presents it.
func (w *Window) Frame(app surfaces.Application, dt float32) error {
	app.Update(dt)
	w.Viewport()
	if err := app.Render(); err != nil {
		return err
	}
	w.win.SwapBuffers()
	return nil
}

// Run initializes app and drives it until the window closes. Escape closes
// the window; Space pauses the clock when app implements Pauser.
func (w *Window) Run(app surfaces.Application) error {
	w.Viewport()
	if err := app.Initialize(); err != nil {
		return err
	}

	w.win.SetKeyCallback(func(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			win.SetShouldClose(true)
		case glfw.KeySpace:
			if p, ok := app.(Pauser); ok {
				p.SetPaused(!p.Paused())
				surfaces.Logger().Info("clock toggled", "paused", p.Paused())
			}
		}
	})

	last := glfw.GetTime()
	for !w.win.ShouldClose() {
		glfw.PollEvents()
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now
		if err := w.Frame(app, dt); err != nil {
			return err
		}
	}
	return nil
}
