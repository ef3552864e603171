package surfaces_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/prideout/surfaces"
)

// numericNormal crosses central-difference partials of f.
func numericNormal(f func(u, v float32) mgl32.Vec3, u, v float32) mgl32.Vec3 {
	const h = 1e-3
	du := f(u+h, v).Sub(f(u-h, v))
	dv := f(u, v+h).Sub(f(u, v-h))
	return du.Cross(dv).Normalize()
}

func TestTorusNormals(t *testing.T) {
	p := surfaces.DefaultTorus
	tests := []struct {
		name    string
		surface func(u, v float32) mgl32.Vec3
		normal  func(u, v float32) mgl32.Vec3
	}{
		{"simple", p.SimpleTorus, p.SimpleTorusNormal},
		{"ridged", p.RidgedTorus, p.RidgedTorusNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, u := range []float32{0.1, 1.3, 2.9, 4.4, 6} {
				for _, v := range []float32{0.2, 1.7, 3.3, 5.1} {
					n := tt.normal(u, v)
					assert.InDelta(t, 1, n.Len(), 1e-4, "u=%v v=%v", u, v)
					assert.Greater(t, n.Dot(numericNormal(tt.surface, u, v)), float32(0.999), "u=%v v=%v", u, v)
				}
			}
		})
	}
}

func TestSimpleTorus_OnTube(t *testing.T) {
	p := surfaces.DefaultTorus
	for _, u := range []float32{0, 1, 2.5, 5} {
		su, cu := math32.Sincos(u)
		center := mgl32.Vec3{p.Major * cu, p.Major * su, 0}
		for _, v := range []float32{0, 0.7, 3} {
			assert.InDelta(t, p.Minor, p.SimpleTorus(u, v).Sub(center).Len(), 1e-5)
		}
	}
}

func TestRidgedTorus_Ridges(t *testing.T) {
	p := surfaces.DefaultTorus
	peak := math32.Pi / (2 * p.RidgeFrequency)
	su, cu := math32.Sincos(peak)
	center := mgl32.Vec3{p.Major * cu, p.Major * su, 0}
	assert.InDelta(t, p.Minor+p.RidgeHeight, p.RidgedTorus(peak, 1).Sub(center).Len(), 1e-5)
}
