package surfaces

import "github.com/go-gl/mathgl/mgl32"

// Scene is the per-process render state mutated once per frame.
//
// View and Model are only changed through SetTransform, which recomputes
// Modelview and NormalMatrix in the same step.
type Scene struct {
	IndexCount int
	Time       float32
	Projection mgl32.Mat4

	view, model, modelview mgl32.Mat4
	normalMatrix           mgl32.Mat3
}

// NewScene returns a scene with identity transforms at time zero.
func NewScene() *Scene {
	s := &Scene{Projection: mgl32.Ident4()}
	s.SetTransform(mgl32.Ident4(), mgl32.Ident4())
	return s
}

// SetTransform sets the view and model matrices and their derived fields.
func (s *Scene) SetTransform(view, model mgl32.Mat4) {
	s.view = view
	s.model = model
	s.modelview = view.Mul4(model)
	s.normalMatrix = s.modelview.Mat3()
}

// View returns the camera matrix.
func (s *Scene) View() mgl32.Mat4 { return s.view }

// Model returns the object rotation.
func (s *Scene) Model() mgl32.Mat4 { return s.model }

// Modelview returns View × Model.
func (s *Scene) Modelview() mgl32.Mat4 { return s.modelview }

// NormalMatrix returns the upper-left 3x3 of Modelview.
func (s *Scene) NormalMatrix() mgl32.Mat3 { return s.normalMatrix }

// Uniforms snapshots the scene for upload.
func (s *Scene) Uniforms() Uniforms {
	return Uniforms{
		Model:        s.model,
		View:         s.view,
		Modelview:    s.modelview,
		Projection:   s.Projection,
		NormalMatrix: s.normalMatrix,
		Time:         s.Time,
	}
}
