package surfaces

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML override file. Zero values leave the preset alone.
//
//	demo = "superellipse"
//	width = 1280
//	height = 720
//	capture = true
//	capture_dir = "shots"
//
//	[[variants]]
//	name = "SimpleTorus"
//	surface = "SimpleTorus"
type FileConfig struct {
	Demo             string           `toml:"demo"`
	Title            string           `toml:"title"`
	Width            int              `toml:"width"`
	Height           int              `toml:"height"`
	Multisample      *bool            `toml:"multisample"`
	VSync            *bool            `toml:"vsync"`
	Capture          *bool            `toml:"capture"`
	CaptureDir       string           `toml:"capture_dir"`
	Texture          string           `toml:"texture"`
	BucketSeconds    float32          `toml:"bucket_seconds"`
	RadiansPerSecond float32          `toml:"radians_per_second"`
	Stages           *StageSet        `toml:"stages"`
	Variants         []SurfaceVariant `toml:"variants"`
}

// ParseConfig decodes a TOML override. Unknown keys are an error so typos
// do not silently fall back to the preset.
func ParseConfig(data []byte) (FileConfig, error) {
	var fc FileConfig
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return FileConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

// Apply overlays the non-zero fields of fc onto cfg.
func (fc FileConfig) Apply(cfg *DemoConfig) {
	if fc.Title != "" {
		cfg.Host.Title = fc.Title
	}
	if fc.Width > 0 {
		cfg.Host.Width = fc.Width
	}
	if fc.Height > 0 {
		cfg.Host.Height = fc.Height
	}
	if fc.Multisample != nil {
		cfg.Host.Multisample = *fc.Multisample
	}
	if fc.VSync != nil {
		cfg.Host.VSync = *fc.VSync
	}
	if fc.Capture != nil {
		cfg.Capture = *fc.Capture
	}
	if fc.CaptureDir != "" {
		cfg.CaptureDir = fc.CaptureDir
	}
	if fc.Texture != "" {
		cfg.Texture = fc.Texture
	}
	if fc.BucketSeconds > 0 {
		cfg.Selector.BucketSeconds = fc.BucketSeconds
	}
	if fc.RadiansPerSecond != 0 {
		cfg.Camera.RadiansPerSecond = fc.RadiansPerSecond
	}
	if fc.Stages != nil {
		cfg.Stages = *fc.Stages
	}
	if len(fc.Variants) > 0 {
		cfg.Selector.Variants = append([]SurfaceVariant(nil), fc.Variants...)
	}
}

// Resolve returns the preset named by fc.Demo with fc applied.
func (fc FileConfig) Resolve() (DemoConfig, error) {
	cfg, err := LookupDemo(fc.Demo)
	if err != nil {
		return DemoConfig{}, err
	}
	fc.Apply(&cfg)
	return cfg, nil
}

// LoadConfigFile reads a TOML override file and resolves it.
func LoadConfigFile(path string) (DemoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DemoConfig{}, fmt.Errorf("read config: %w", err)
	}
	fc, err := ParseConfig(data)
	if err != nil {
		return DemoConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return fc.Resolve()
}
