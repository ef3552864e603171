// Package opengl implements surfaces.Device on OpenGL 4.1 core and hosts
// a surfaces.Application in a GLFW window.
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/prideout/surfaces"
)

var glStages = map[surfaces.Stage]uint32{
	surfaces.StageVertex:      gl.VERTEX_SHADER,
	surfaces.StageTessControl: gl.TESS_CONTROL_SHADER,
	surfaces.StageTessEval:    gl.TESS_EVALUATION_SHADER,
	surfaces.StageGeometry:    gl.GEOMETRY_SHADER,
	surfaces.StageFragment:    gl.FRAGMENT_SHADER,
}

// Device issues GL calls for the pipeline. All methods must be called on
// the thread that owns the context.
type Device struct {
	vao      uint32
	buffers  []uint32
	textures []uint32
	programs []uint32
}

// NewDevice returns a device. It makes no GL calls until used, so it can be
// created before the host opens the window.
func NewDevice() *Device {
	return &Device{}
}

// CompileShader implements surfaces.ShaderCompiler.
func (d *Device) CompileShader(stage surfaces.Stage, source string) (uint32, error) {
	typ, ok := glStages[stage]
	if !ok {
		return 0, fmt.Errorf("unsupported stage %v", stage)
	}
	shader := gl.CreateShader(typ)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w:\n%s", surfaces.ErrCompile, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// DeleteShader implements surfaces.ShaderCompiler.
func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// LinkProgram implements surfaces.ShaderCompiler. The shaders are detached
// and deleted whatever the outcome.
func (d *Device) LinkProgram(shaders []uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(program, sh)
	}
	gl.LinkProgram(program)
	for _, sh := range shaders {
		gl.DetachShader(program, sh)
		gl.DeleteShader(sh)
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w:\n%s", surfaces.ErrLink, strings.TrimRight(log, "\x00"))
	}
	d.programs = append(d.programs, program)
	return program, nil
}

// UseProgram implements surfaces.ShaderCompiler.
func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// CreateMesh implements surfaces.GeometryUploader.
func (d *Device) CreateMesh(program uint32, attrib string, positions []float32, indices []uint16) error {
	loc := gl.GetAttribLocation(program, gl.Str(attrib+"\x00"))
	if loc < 0 {
		return fmt.Errorf("vertex attribute %q not found", attrib)
	}

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	var vbo, ebo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(uint32(loc), 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(uint32(loc))

	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)

	d.buffers = append(d.buffers, vbo, ebo)
	return d.Err()
}

// CreateEmptyVertexArray implements surfaces.GeometryUploader.
func (d *Device) CreateEmptyVertexArray() error {
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	return d.Err()
}

// ActiveSubroutineUniformLocations implements surfaces.SubroutineBinder.
func (d *Device) ActiveSubroutineUniformLocations(program uint32, stage surfaces.Stage) int {
	var count int32
	gl.GetProgramStageiv(program, glStages[stage], gl.ACTIVE_SUBROUTINE_UNIFORM_LOCATIONS, &count)
	return int(count)
}

// SubroutineUniformLocation implements surfaces.SubroutineBinder.
func (d *Device) SubroutineUniformLocation(program uint32, stage surfaces.Stage, name string) int32 {
	return gl.GetSubroutineUniformLocation(program, glStages[stage], gl.Str(name+"\x00"))
}

// SubroutineIndex implements surfaces.SubroutineBinder.
func (d *Device) SubroutineIndex(program uint32, stage surfaces.Stage, name string) (uint32, bool) {
	idx := gl.GetSubroutineIndex(program, glStages[stage], gl.Str(name+"\x00"))
	return idx, idx != gl.INVALID_INDEX
}

// UniformSubroutines implements surfaces.SubroutineBinder.
func (d *Device) UniformSubroutines(stage surfaces.Stage, indices []uint32) {
	if len(indices) == 0 {
		return
	}
	gl.UniformSubroutinesuiv(glStages[stage], int32(len(indices)), &indices[0])
}

// Prepare implements surfaces.Device.
func (d *Device) Prepare(clear [4]float32) {
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
}

// SetUniforms implements surfaces.Device.
func (d *Device) SetUniforms(program uint32, u surfaces.Uniforms) {
	mat4 := func(name string, m *[16]float32) {
		if loc := uniform(program, name); loc >= 0 {
			gl.UniformMatrix4fv(loc, 1, false, &m[0])
		}
	}
	mat4("ViewMatrix", (*[16]float32)(&u.View))
	mat4("ModelMatrix", (*[16]float32)(&u.Model))
	mat4("Modelview", (*[16]float32)(&u.Modelview))
	mat4("Projection", (*[16]float32)(&u.Projection))
	if loc := uniform(program, "NormalMatrix"); loc >= 0 {
		gl.UniformMatrix3fv(loc, 1, false, &u.NormalMatrix[0])
	}
	if loc := uniform(program, "Time"); loc >= 0 {
		gl.Uniform1f(loc, u.Time)
	}
}

// CreateTexture implements surfaces.Device. The texture is bound to unit 0
// and the optional HasTexture uniform is set.
func (d *Device) CreateTexture(program uint32, sampler string, img *surfaces.TextureImage) error {
	var format uint32
	switch img.Layout {
	case surfaces.LayoutRed:
		format = gl.RED
	case surfaces.LayoutRGB:
		format = gl.RGB
	case surfaces.LayoutRGBA:
		format = gl.RGBA
	default:
		return fmt.Errorf("layout %v: %w", img.Layout, surfaces.ErrUnsupportedFormat)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(img.Width), int32(img.Height), 0,
		format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	d.textures = append(d.textures, tex)

	if loc := uniform(program, sampler); loc >= 0 {
		gl.Uniform1i(loc, 0)
	}
	if loc := uniform(program, "HasTexture"); loc >= 0 {
		gl.Uniform1i(loc, 1)
	}
	return d.Err()
}

// Clear implements surfaces.Device.
func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw implements surfaces.Device.
func (d *Device) Draw(call surfaces.DrawCall) {
	gl.BindVertexArray(d.vao)
	gl.PatchParameteri(gl.PATCH_VERTICES, int32(call.PatchVertices))
	if call.Indexed {
		gl.DrawElementsWithOffset(gl.PATCHES, int32(call.Count), gl.UNSIGNED_SHORT, 0)
		return
	}
	gl.DrawArrays(gl.PATCHES, 0, int32(call.Count))
}

// ReadFramebuffer implements surfaces.FramebufferReader. It reads the
// current viewport.
func (d *Device) ReadFramebuffer() (surfaces.Framebuffer, error) {
	var viewport [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &viewport[0])
	fb := surfaces.Framebuffer{Width: int(viewport[2]), Height: int(viewport[3])}
	if fb.Width <= 0 || fb.Height <= 0 {
		return fb, fmt.Errorf("empty viewport %v", viewport)
	}
	fb.Pix = make([]byte, fb.Width*fb.Height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(viewport[0], viewport[1], viewport[2], viewport[3], gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(fb.Pix))
	return fb, d.Err()
}

// Err implements surfaces.Device.
func (d *Device) Err() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%w 0x%04x", surfaces.ErrGL, code)
	}
	return nil
}

// Delete releases every GL object the device created.
func (d *Device) Delete() {
	if len(d.textures) > 0 {
		gl.DeleteTextures(int32(len(d.textures)), &d.textures[0])
	}
	if len(d.buffers) > 0 {
		gl.DeleteBuffers(int32(len(d.buffers)), &d.buffers[0])
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	for _, p := range d.programs {
		gl.DeleteProgram(p)
	}
	d.textures, d.buffers, d.programs, d.vao = nil, nil, nil, 0
}

func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
