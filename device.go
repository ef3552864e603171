package surfaces

import "github.com/go-gl/mathgl/mgl32"

// ShaderCompiler compiles stages and links them into a program.
type ShaderCompiler interface {
	// CompileShader compiles one stage. On failure the error carries the
	// compiler log verbatim.
	CompileShader(stage Stage, source string) (uint32, error)
	// DeleteShader releases a compiled stage that will not be linked.
	DeleteShader(shader uint32)
	// LinkProgram attaches the shaders and links them. On failure the error
	// carries the linker log verbatim.
	LinkProgram(shaders []uint32) (uint32, error)
	// UseProgram makes the program current.
	UseProgram(program uint32)
}

// GeometryUploader creates the buffers that seed the tessellator.
type GeometryUploader interface {
	// CreateMesh uploads 2-component positions bound to the named vertex
	// attribute plus a 16-bit index buffer, inside a new vertex array.
	CreateMesh(program uint32, attrib string, positions []float32, indices []uint16) error
	// CreateEmptyVertexArray creates and binds a vertex array with no
	// attached buffers, as required before drawing attribute-less patches.
	CreateEmptyVertexArray() error
}

// SubroutineBinder exposes the subroutine-uniform queries of a program stage.
type SubroutineBinder interface {
	ActiveSubroutineUniformLocations(program uint32, stage Stage) int
	// SubroutineUniformLocation returns -1 when the slot does not exist.
	SubroutineUniformLocation(program uint32, stage Stage, name string) int32
	// SubroutineIndex returns false when the routine does not exist.
	SubroutineIndex(program uint32, stage Stage, name string) (uint32, bool)
	// UniformSubroutines binds indices[location] = routine for every slot.
	UniformSubroutines(stage Stage, indices []uint32)
}

// Framebuffer is an RGBA8 read-back of the color buffer. Rows are stored
// bottom-to-top, the way GL returns them.
type Framebuffer struct {
	Width, Height int
	Pix           []byte
}

// FramebufferReader reads back the current color buffer.
type FramebufferReader interface {
	ReadFramebuffer() (Framebuffer, error)
}

// Uniforms is the per-frame uniform block pushed before drawing.
type Uniforms struct {
	Model, View, Modelview, Projection mgl32.Mat4
	NormalMatrix                       mgl32.Mat3
	Time                               float32
}

// Device is everything the pipeline needs from the GPU.
// backend/opengl provides the go-gl implementation.
type Device interface {
	ShaderCompiler
	GeometryUploader
	SubroutineBinder
	FramebufferReader

	// Prepare sets the fixed render state (depth test, clear color).
	Prepare(clear [4]float32)
	// SetUniforms uploads u to the current program; missing uniforms are skipped.
	SetUniforms(program uint32, u Uniforms)
	// CreateTexture uploads img and binds it to the named sampler on unit 0.
	CreateTexture(program uint32, sampler string, img *TextureImage) error
	Clear()
	Draw(call DrawCall)
	// Err reports and clears the GL error flag.
	Err() error
}
