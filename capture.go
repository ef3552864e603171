package surfaces

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// FlipRows reverses the row order of pix in place.
func FlipRows(pix []byte, stride, height int) {
	tmp := make([]byte, stride)
	for y := 0; y < height/2; y++ {
		top := y * stride
		bot := (height - 1 - y) * stride
		copy(tmp, pix[top:top+stride])
		copy(pix[top:top+stride], pix[bot:bot+stride])
		copy(pix[bot:bot+stride], tmp)
	}
}

// WritePNG writes a bottom-to-top framebuffer as a top-to-bottom PNG.
// fb.Pix is left untouched.
func WritePNG(path string, fb Framebuffer) error {
	if len(fb.Pix) < fb.Width*fb.Height*4 {
		return fmt.Errorf("framebuffer %dx%d has %d bytes: %w", fb.Width, fb.Height, len(fb.Pix), ErrUnsupportedFormat)
	}
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Pix)
	FlipRows(img.Pix, img.Stride, fb.Height)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrCaptureOutput, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Capturer writes one screenshot per surface transition.
type Capturer struct {
	Enabled bool
	Dir     string

	reader  FramebufferReader
	pending string
	written []string
}

// NewCapturer returns a capturer reading from r. A disabled capturer
// ignores every request.
func NewCapturer(r FramebufferReader, enabled bool, dir string) *Capturer {
	return &Capturer{Enabled: enabled, Dir: dir, reader: r}
}

// Request schedules a capture for the named surface. Only the latest
// request before Flush is kept.
func (c *Capturer) Request(name string) {
	if !c.Enabled {
		return
	}
	c.pending = name
}

// Pending returns the scheduled surface name, if any.
func (c *Capturer) Pending() string { return c.pending }

// Written returns the paths written so far, in order.
func (c *Capturer) Written() []string { return c.written }

// Flush reads back the framebuffer and writes <Dir>/<name>.png if a capture
// is pending. Call it after the frame's draw.
func (c *Capturer) Flush() error {
	if c.pending == "" {
		return nil
	}
	name := c.pending
	c.pending = ""

	fb, err := c.reader.ReadFramebuffer()
	if err != nil {
		return fmt.Errorf("read framebuffer: %w", err)
	}
	if c.Dir != "" {
		if err := os.MkdirAll(c.Dir, 0o755); err != nil {
			return fmt.Errorf("%s: %w: %w", c.Dir, ErrCaptureOutput, err)
		}
	}
	path := filepath.Join(c.Dir, name+".png")
	if err := WritePNG(path, fb); err != nil {
		return err
	}
	c.written = append(c.written, path)
	Logger().Info("capture written", "path", path, "width", fb.Width, "height", fb.Height)
	return nil
}
