package surfaces

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RotationMode selects how the model spins over time.
type RotationMode int

const (
	// RotateXYZ rotates by the same angle about X, then Y, then Z.
	RotateXYZ RotationMode = iota
	RotateX
	RotateZ
)

func (m RotationMode) String() string {
	switch m {
	case RotateXYZ:
		return "xyz"
	case RotateX:
		return "x"
	case RotateZ:
		return "z"
	default:
		return fmt.Sprintf("rotation(%d)", int(m))
	}
}

// ProjectionKind selects the projection matrix builder.
type ProjectionKind int

const (
	PerspectiveProjection ProjectionKind = iota
	FrustumProjection
)

// ProjectionConfig describes the projection. Perspective uses FovY (radians);
// Frustum uses HalfHeight and derives the half width from the aspect ratio.
type ProjectionConfig struct {
	Kind       ProjectionKind
	FovY       float32
	HalfHeight float32
	Near, Far  float32
}

// CameraConfig holds the fixed camera constants of a demo.
type CameraConfig struct {
	Eye, Target, Up  mgl32.Vec3
	RadiansPerSecond float32
	Rotation         RotationMode
	Projection       ProjectionConfig
}

// Camera derives the per-frame transforms. It never touches the GPU.
type Camera struct {
	cfg  CameraConfig
	view mgl32.Mat4
}

// NewCamera builds a camera. The view matrix is computed once.
func NewCamera(cfg CameraConfig) *Camera {
	return &Camera{
		cfg:  cfg,
		view: mgl32.LookAtV(cfg.Eye, cfg.Target, cfg.Up),
	}
}

// Config returns the camera constants.
func (c *Camera) Config() CameraConfig { return c.cfg }

// View returns the constant view matrix.
func (c *Camera) View() mgl32.Mat4 { return c.view }

// Period returns the rotation period in seconds.
func (c *Camera) Period() float32 {
	if c.cfg.RadiansPerSecond == 0 {
		return math32.Inf(1)
	}
	return 2 * math32.Pi / math32.Abs(c.cfg.RadiansPerSecond)
}

// Projection returns the projection matrix for the given aspect ratio.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	p := c.cfg.Projection
	switch p.Kind {
	case FrustumProjection:
		h := p.HalfHeight
		w := h * aspect
		return mgl32.Frustum(-w, w, -h, h, p.Near, p.Far)
	default:
		return mgl32.Perspective(p.FovY, aspect, p.Near, p.Far)
	}
}

// ModelAt returns the model matrix at elapsed time t.
func (c *Camera) ModelAt(t float32) mgl32.Mat4 {
	theta := t * c.cfg.RadiansPerSecond
	switch c.cfg.Rotation {
	case RotateX:
		return mgl32.HomogRotate3DX(theta)
	case RotateZ:
		return mgl32.HomogRotate3DZ(theta)
	default:
		return mgl32.HomogRotate3DZ(theta).
			Mul4(mgl32.HomogRotate3DY(theta)).
			Mul4(mgl32.HomogRotate3DX(theta))
	}
}

// Update advances the scene clock by dt seconds and recomputes the
// transforms.
func (c *Camera) Update(s *Scene, dt float32) {
	s.Time += dt
	s.SetTransform(c.view, c.ModelAt(s.Time))
}
