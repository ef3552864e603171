package surfaces

import (
	"fmt"

	"github.com/chewxy/math32"
)

// GeometryMode selects how the tessellator is fed.
type GeometryMode int

const (
	// MeshGeometry uploads a grid of (u, v) parameters and an index list.
	MeshGeometry GeometryMode = iota
	// PatchlessGeometry draws attribute-less patches; the evaluation stage
	// derives everything from the primitive and tessellation coordinates.
	PatchlessGeometry
)

func (m GeometryMode) String() string {
	switch m {
	case MeshGeometry:
		return "mesh"
	case PatchlessGeometry:
		return "patchless"
	default:
		return fmt.Sprintf("geometry(%d)", int(m))
	}
}

// maxGridVertices bounds grids so every index fits an unsigned short.
const maxGridVertices = 1 << 16

// PositionAttrib is the vertex attribute that receives grid parameters.
const PositionAttrib = "Position"

// GeometryConfig describes the geometry a demo feeds to the tessellator.
type GeometryConfig struct {
	Mode GeometryMode
	// Mesh mode.
	Slices, Stacks int
	// ClosedSeam repeats the first row/column at 2π so the seam is closed.
	ClosedSeam bool
	// PatchVertices is the patch size (3 or 4) in both modes.
	PatchVertices int
	// PatchCount is the number of patches drawn in patchless mode.
	PatchCount int
}

// Mesh is a CPU-side parameter grid.
type Mesh struct {
	Slices, Stacks int
	// Positions holds one (u, v) pair per vertex; u follows the slice and
	// v the stack.
	Positions []float32
	Indices   []uint16
}

// VertexCount returns the number of grid vertices.
func (m *Mesh) VertexCount() int { return m.Slices * m.Stacks }

// GridMesh builds a slices x stacks grid of surface parameters and the
// triangle list that connects it.
func GridMesh(slices, stacks int, closed bool) (*Mesh, error) {
	if slices < 2 || stacks < 2 {
		return nil, fmt.Errorf("%dx%d: %w", slices, stacks, ErrInvalidGrid)
	}
	if slices*stacks >= maxGridVertices {
		return nil, fmt.Errorf("%dx%d: %w", slices, stacks, ErrGridTooLarge)
	}

	sliceDiv, stackDiv := float32(slices), float32(stacks)
	if closed {
		sliceDiv, stackDiv = float32(slices-1), float32(stacks-1)
	}

	m := &Mesh{
		Slices:    slices,
		Stacks:    stacks,
		Positions: make([]float32, 0, slices*stacks*2),
		Indices:   make([]uint16, 0, (slices-1)*(stacks-1)*6),
	}
	for slice := 0; slice < slices; slice++ {
		u := float32(slice) * 2 * math32.Pi / sliceDiv
		for stack := 0; stack < stacks; stack++ {
			v := float32(stack) * 2 * math32.Pi / stackDiv
			m.Positions = append(m.Positions, u, v)
		}
	}

	v := 0
	for i := 0; i < slices-1; i++ {
		for j := 0; j < stacks-1; j++ {
			next := j + 1
			m.Indices = append(m.Indices,
				uint16(v+next+stacks), uint16(v+next), uint16(v+j),
				uint16(v+j), uint16(v+j+stacks), uint16(v+next+stacks),
			)
		}
		v += stacks
	}
	return m, nil
}

// DrawCall describes the single draw issued each frame.
type DrawCall struct {
	PatchVertices int
	// Indexed draws Count indices from the element buffer; otherwise Count
	// attribute-less vertices are emitted.
	Indexed bool
	Count   int
}

// SupplyGeometry creates the geometry for cfg once and returns the draw
// that consumes it.
func SupplyGeometry(dev GeometryUploader, program uint32, cfg GeometryConfig) (DrawCall, error) {
	if cfg.PatchVertices != 3 && cfg.PatchVertices != 4 {
		return DrawCall{}, fmt.Errorf("%d: %w", cfg.PatchVertices, ErrInvalidPatch)
	}

	switch cfg.Mode {
	case PatchlessGeometry:
		if cfg.PatchCount < 1 {
			return DrawCall{}, fmt.Errorf("patchless geometry needs at least one patch, got %d", cfg.PatchCount)
		}
		if err := dev.CreateEmptyVertexArray(); err != nil {
			return DrawCall{}, fmt.Errorf("empty vertex array: %w", err)
		}
		call := DrawCall{PatchVertices: cfg.PatchVertices, Count: cfg.PatchCount * cfg.PatchVertices}
		Logger().Info("geometry supplied", "mode", cfg.Mode, "vertices", call.Count)
		return call, nil

	case MeshGeometry:
		mesh, err := GridMesh(cfg.Slices, cfg.Stacks, cfg.ClosedSeam)
		if err != nil {
			return DrawCall{}, err
		}
		if len(mesh.Indices)%cfg.PatchVertices != 0 {
			return DrawCall{}, fmt.Errorf("%d indices do not split into patches of %d: %w",
				len(mesh.Indices), cfg.PatchVertices, ErrInvalidPatch)
		}
		if err := dev.CreateMesh(program, PositionAttrib, mesh.Positions, mesh.Indices); err != nil {
			return DrawCall{}, fmt.Errorf("mesh buffers: %w", err)
		}
		call := DrawCall{PatchVertices: cfg.PatchVertices, Indexed: true, Count: len(mesh.Indices)}
		Logger().Info("geometry supplied", "mode", cfg.Mode,
			"vertices", mesh.VertexCount(), "indices", call.Count)
		return call, nil

	default:
		return DrawCall{}, fmt.Errorf("unknown geometry mode %v", cfg.Mode)
	}
}
