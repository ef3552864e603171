package surfaces_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prideout/surfaces"
)

var _ surfaces.Device = (*fakeDevice)(nil)

func TestGridMesh_Counts(t *testing.T) {
	m, err := surfaces.GridMesh(16, 3, false)
	require.NoError(t, err)

	assert.Equal(t, 48, m.VertexCount())
	assert.Len(t, m.Positions, 96)
	assert.Len(t, m.Indices, 15*2*6)
	assert.Zero(t, len(m.Indices)%3)
	for i, idx := range m.Indices {
		assert.Less(t, int(idx), m.VertexCount(), "index %d", i)
	}
}

func TestGridMesh_Parameters(t *testing.T) {
	const slices, stacks = 8, 4
	m, err := surfaces.GridMesh(slices, stacks, false)
	require.NoError(t, err)

	at := func(slice, stack int) (u, v float32) {
		i := 2 * (slice*stacks + stack)
		return m.Positions[i], m.Positions[i+1]
	}

	u, v := at(0, 0)
	assert.Zero(t, u)
	assert.Zero(t, v)

	u, v = at(3, 1)
	assert.InDelta(t, 3*2*math32.Pi/slices, u, 1e-5)
	assert.InDelta(t, 2*math32.Pi/stacks, v, 1e-5)

	// The open grid stops one step short of 2π.
	u, v = at(slices-1, stacks-1)
	assert.Less(t, u, 2*math32.Pi)
	assert.Less(t, v, 2*math32.Pi)
}

func TestGridMesh_ClosedSeam(t *testing.T) {
	const slices, stacks = 8, 4
	m, err := surfaces.GridMesh(slices, stacks, true)
	require.NoError(t, err)

	last := 2 * (slices*stacks - 1)
	assert.InDelta(t, 2*math32.Pi, m.Positions[last], 1e-5)
	assert.InDelta(t, 2*math32.Pi, m.Positions[last+1], 1e-5)
}

func TestMeshPresets_CloseSeam(t *testing.T) {
	for _, name := range surfaces.DemoNames() {
		cfg, err := surfaces.LookupDemo(name)
		require.NoError(t, err)
		g := cfg.Geometry
		if g.Mode != surfaces.MeshGeometry {
			continue
		}
		t.Run(name, func(t *testing.T) {
			assert.True(t, g.ClosedSeam)

			m, err := surfaces.GridMesh(g.Slices, g.Stacks, g.ClosedSeam)
			require.NoError(t, err)
			last := 2 * (m.VertexCount() - 1)
			assert.InDelta(t, 2*math32.Pi, m.Positions[last], 1e-5, "u")
			assert.InDelta(t, 2*math32.Pi, m.Positions[last+1], 1e-5, "v")
		})
	}
}

func TestGridMesh_FirstCell(t *testing.T) {
	m, err := surfaces.GridMesh(3, 3, false)
	require.NoError(t, err)

	// Two triangles joining (0,0), (0,1), (1,0) and (1,1).
	assert.Equal(t, []uint16{4, 1, 0, 0, 3, 4}, m.Indices[:6])
}

func TestGridMesh_Invalid(t *testing.T) {
	_, err := surfaces.GridMesh(1, 3, false)
	assert.ErrorIs(t, err, surfaces.ErrInvalidGrid)

	_, err = surfaces.GridMesh(3, 0, false)
	assert.ErrorIs(t, err, surfaces.ErrInvalidGrid)
}

func TestGridMesh_TooLarge(t *testing.T) {
	_, err := surfaces.GridMesh(256, 256, false)
	assert.ErrorIs(t, err, surfaces.ErrGridTooLarge)

	m, err := surfaces.GridMesh(255, 257, false)
	require.NoError(t, err)
	assert.Equal(t, 65535, m.VertexCount())
}

func TestSupplyGeometry_Mesh(t *testing.T) {
	dev := newFakeDevice()
	call, err := surfaces.SupplyGeometry(dev, 7, surfaces.GeometryConfig{
		Mode: surfaces.MeshGeometry, Slices: 16, Stacks: 3, PatchVertices: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, surfaces.DrawCall{PatchVertices: 3, Indexed: true, Count: 180}, call)
	assert.Equal(t, []string{surfaces.PositionAttrib}, dev.meshAttribs)
	require.Len(t, dev.meshIndices, 1)
	assert.Len(t, dev.meshIndices[0], 180)
	assert.Zero(t, dev.emptyVAOs)
}

func TestSupplyGeometry_Patchless(t *testing.T) {
	dev := newFakeDevice()
	call, err := surfaces.SupplyGeometry(dev, 7, surfaces.GeometryConfig{
		Mode: surfaces.PatchlessGeometry, PatchVertices: 4, PatchCount: 16,
	})
	require.NoError(t, err)

	assert.Equal(t, surfaces.DrawCall{PatchVertices: 4, Count: 64}, call)
	assert.Equal(t, 1, dev.emptyVAOs)
	assert.Empty(t, dev.meshIndices)
}

func TestSupplyGeometry_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  surfaces.GeometryConfig
		want error
	}{
		{
			name: "patch size",
			cfg:  surfaces.GeometryConfig{Mode: surfaces.MeshGeometry, Slices: 4, Stacks: 4, PatchVertices: 5},
			want: surfaces.ErrInvalidPatch,
		},
		{
			name: "indices not divisible",
			cfg:  surfaces.GeometryConfig{Mode: surfaces.MeshGeometry, Slices: 16, Stacks: 4, PatchVertices: 4},
			want: surfaces.ErrInvalidPatch,
		},
		{
			name: "grid too large",
			cfg:  surfaces.GeometryConfig{Mode: surfaces.MeshGeometry, Slices: 300, Stacks: 300, PatchVertices: 3},
			want: surfaces.ErrGridTooLarge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newFakeDevice()
			_, err := surfaces.SupplyGeometry(dev, 1, tt.cfg)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, dev.calls)
		})
	}

	_, err := surfaces.SupplyGeometry(newFakeDevice(), 1, surfaces.GeometryConfig{
		Mode: surfaces.PatchlessGeometry, PatchVertices: 4,
	})
	assert.Error(t, err)
}
