package surfaces

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// TorusParams mirrors the constants of the torus routines in
// shaders/Torus.glsl. The CPU evaluators below follow the same formulas
// and are used to check the analytic normals.
type TorusParams struct {
	Major, Minor   float32
	RidgeHeight    float32
	RidgeFrequency float32
}

// DefaultTorus matches the shader constants.
var DefaultTorus = TorusParams{Major: 1, Minor: 0.3, RidgeHeight: 0.06, RidgeFrequency: 12}

// SimpleTorus sweeps a circle of radius Minor around a circle of radius
// Major. u runs along the sweep, v around the cross section.
func (p TorusParams) SimpleTorus(u, v float32) mgl32.Vec3 {
	return p.sweep(u, v, p.Minor)
}

// SimpleTorusNormal is the unit normal of SimpleTorus.
func (p TorusParams) SimpleTorusNormal(u, v float32) mgl32.Vec3 {
	su, cu := math32.Sincos(u)
	sv, cv := math32.Sincos(v)
	return mgl32.Vec3{cv * cu, cv * su, sv}
}

// RidgedTorus modulates the minor radius with RidgeFrequency ridges along
// the sweep.
func (p TorusParams) RidgedTorus(u, v float32) mgl32.Vec3 {
	return p.sweep(u, v, p.ridgedRadius(u))
}

// RidgedTorusNormal is the unit normal of RidgedTorus, from the cross
// product of its analytic partial derivatives.
func (p TorusParams) RidgedTorusNormal(u, v float32) mgl32.Vec3 {
	su, cu := math32.Sincos(u)
	sv, cv := math32.Sincos(v)
	r := p.ridgedRadius(u)
	dr := p.RidgeHeight * p.RidgeFrequency * math32.Cos(p.RidgeFrequency*u)
	ring := p.Major + r*cv

	dpdu := mgl32.Vec3{-ring*su + dr*cv*cu, ring*cu + dr*cv*su, dr * sv}
	dpdv := mgl32.Vec3{-r * sv * cu, -r * sv * su, r * cv}
	return dpdu.Cross(dpdv).Normalize()
}

func (p TorusParams) ridgedRadius(u float32) float32 {
	return p.Minor + p.RidgeHeight*math32.Sin(p.RidgeFrequency*u)
}

func (p TorusParams) sweep(u, v, r float32) mgl32.Vec3 {
	su, cu := math32.Sincos(u)
	sv, cv := math32.Sincos(v)
	ring := p.Major + r*cv
	return mgl32.Vec3{ring * cu, ring * su, r * sv}
}
