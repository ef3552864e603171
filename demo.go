package surfaces

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// HostConfig is what the host needs to open the window.
type HostConfig struct {
	Title       string
	Width       int
	Height      int
	Multisample bool
	VSync       bool
}

// Aspect returns width / height.
func (c HostConfig) Aspect() float32 {
	if c.Height == 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// DemoConfig parameterizes one demo. Every demo shares the same program
// assembler, geometry supplier, camera and selector.
type DemoConfig struct {
	Name       string
	Host       HostConfig
	Stages     StageSet
	Geometry   GeometryConfig
	Camera     CameraConfig
	Selector   SelectorConfig
	ClearColor [4]float32

	// Capture writes one PNG per surface transition into CaptureDir.
	Capture    bool
	CaptureDir string

	// Texture is an optional image bound to TextureSampler on unit 0.
	Texture        string
	TextureSampler string
}

var defaultClear = [4]float32{0.2, 0.2, 0.2, 1}

// RidgedTorusDemo alternates a plain and a ridged torus every 2.5 seconds
// using separate surface and normal subroutine slots.
func RidgedTorusDemo() DemoConfig {
	return DemoConfig{
		Name: "ridged-torus",
		Host: HostConfig{Title: "Ridged Torus", Width: 800 * 3 / 2, Height: 600 * 3 / 2, Multisample: true, VSync: true},
		Stages: StageSet{
			Vertex:      "Torus.VS",
			TessControl: "Torus.TCS",
			TessEval:    "Torus.TES",
			Geometry:    "Torus.GS",
			Fragment:    "Torus.FS",
		},
		Geometry: GeometryConfig{Mode: MeshGeometry, Slices: 16, Stacks: 3, ClosedSeam: true, PatchVertices: 3},
		Camera: CameraConfig{
			Eye:              mgl32.Vec3{0, -5, 5},
			Up:               mgl32.Vec3{0, 1, 0},
			RadiansPerSecond: 0.75,
			Rotation:         RotateXYZ,
			Projection:       ProjectionConfig{Kind: PerspectiveProjection, FovY: 0.55, Near: 5, Far: 90},
		},
		Selector:   SelectorConfig{Variants: append([]SurfaceVariant(nil), TorusVariants...), BucketSeconds: 2.5, Slots: 2},
		ClearColor: defaultClear,
		CaptureDir: "captures",
	}
}

// SpiralDemo renders a single spiral sweep from a dense grid under a
// frustum projection. It has no surface selection.
func SpiralDemo() DemoConfig {
	return DemoConfig{
		Name: "spiral",
		Host: HostConfig{Title: "Spiral", Width: 800 * 3 / 2, Height: 600 * 3 / 2, Multisample: true, VSync: true},
		Stages: StageSet{
			Vertex:      "Spiral.VS",
			TessControl: "Spiral.TCS",
			TessEval:    "Spiral.TES",
			Geometry:    "Spiral.GS",
			Fragment:    "Spiral.FS",
		},
		Geometry: GeometryConfig{Mode: MeshGeometry, Slices: 64, Stacks: 32, ClosedSeam: true, PatchVertices: 3},
		Camera: CameraConfig{
			Eye:              mgl32.Vec3{0, -50, 50},
			Up:               mgl32.Vec3{0, 1, 0},
			RadiansPerSecond: 0.75,
			Rotation:         RotateZ,
			Projection:       ProjectionConfig{Kind: FrustumProjection, HalfHeight: 1.5, Near: 65, Far: 90},
		},
		ClearColor:     defaultClear,
		CaptureDir:     "captures",
		TextureSampler: "Texture",
	}
}

// SuperellipseDemo cycles five surfaces every 5 seconds. Geometry is fully
// procedural: quad patches with no vertex attributes.
func SuperellipseDemo() DemoConfig {
	return DemoConfig{
		Name: "superellipse",
		Host: HostConfig{Title: "Superellipse", Width: 800 * 3 / 2, Height: 600 * 3 / 2, Multisample: true, VSync: true},
		Stages: StageSet{
			Vertex:      "Patchless.VS",
			TessControl: "Patchless.TCS",
			TessEval:    "Patchless.TES",
			Fragment:    "Patchless.FS",
		},
		Geometry: GeometryConfig{Mode: PatchlessGeometry, PatchVertices: 4, PatchCount: 16},
		Camera: CameraConfig{
			Eye:              mgl32.Vec3{0, -5, 5},
			Up:               mgl32.Vec3{0, 1, 0},
			RadiansPerSecond: 0.75,
			Rotation:         RotateX,
			Projection:       ProjectionConfig{Kind: PerspectiveProjection, FovY: 0.55, Near: 5, Far: 90},
		},
		Selector:   SelectorConfig{Variants: append([]SurfaceVariant(nil), SurfaceVariants...), BucketSeconds: 5, Slots: 1},
		ClearColor: defaultClear,
		CaptureDir: "captures",
	}
}

var demos = map[string]func() DemoConfig{
	"ridged-torus": RidgedTorusDemo,
	"spiral":       SpiralDemo,
	"superellipse": SuperellipseDemo,
}

// DefaultDemo is the demo run when none is named.
const DefaultDemo = "ridged-torus"

// DemoNames lists the registered demos in sorted order.
func DemoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupDemo returns a fresh copy of the named preset.
func LookupDemo(name string) (DemoConfig, error) {
	if name == "" {
		name = DefaultDemo
	}
	mk, ok := demos[name]
	if !ok {
		return DemoConfig{}, fmt.Errorf("%q (have %v): %w", name, DemoNames(), ErrUnknownDemo)
	}
	return mk(), nil
}
