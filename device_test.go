package surfaces_test

import (
	"github.com/prideout/surfaces"
)

// fakeDevice records every call instead of talking to a GPU.
type fakeDevice struct {
	calls []string

	next       uint32
	compiled   []surfaces.Stage
	compileErr map[surfaces.Stage]error
	deleted    []uint32
	linkErr    error
	linked     [][]uint32
	used       []uint32

	meshAttribs []string
	meshIndices [][]uint16
	emptyVAOs   int

	activeSlots int
	locations   map[string]int32
	routines    map[string]uint32
	bound       [][]uint32

	framebuffer surfaces.Framebuffer
	reads       int

	prepared [][4]float32
	uniforms []surfaces.Uniforms
	samplers []string
	textures []*surfaces.TextureImage
	draws    []surfaces.DrawCall
	errOnce  error
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		compileErr: map[surfaces.Stage]error{},
		locations:  map[string]int32{},
		routines:   map[string]uint32{},
		framebuffer: surfaces.Framebuffer{
			Width: 2, Height: 2,
			// Bottom row red, top row blue.
			Pix: []byte{
				255, 0, 0, 255, 255, 0, 0, 255,
				0, 0, 255, 255, 0, 0, 255, 255,
			},
		},
	}
}

// newTorusDevice exposes the two slots and four routines of Torus.TES.
func newTorusDevice() *fakeDevice {
	d := newFakeDevice()
	d.activeSlots = 2
	d.locations[surfaces.SurfaceSlot] = 0
	d.locations[surfaces.NormalSlot] = 1
	for i, v := range surfaces.TorusVariants {
		d.routines[v.Surface] = uint32(2 * i)
		d.routines[v.Normal] = uint32(2*i + 1)
	}
	return d
}

// newPatchlessDevice exposes the single slot of Patchless.TES.
func newPatchlessDevice() *fakeDevice {
	d := newFakeDevice()
	d.activeSlots = 1
	d.locations[surfaces.SurfaceSlot] = 0
	for i, v := range surfaces.SurfaceVariants {
		d.routines[v.Surface] = uint32(i)
	}
	return d
}

func (d *fakeDevice) CompileShader(stage surfaces.Stage, _ string) (uint32, error) {
	d.calls = append(d.calls, "compile")
	if err := d.compileErr[stage]; err != nil {
		return 0, err
	}
	d.compiled = append(d.compiled, stage)
	d.next++
	return d.next, nil
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.calls = append(d.calls, "delete")
	d.deleted = append(d.deleted, shader)
}

func (d *fakeDevice) LinkProgram(shaders []uint32) (uint32, error) {
	d.calls = append(d.calls, "link")
	if d.linkErr != nil {
		return 0, d.linkErr
	}
	d.linked = append(d.linked, shaders)
	d.next++
	return d.next, nil
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.calls = append(d.calls, "use")
	d.used = append(d.used, program)
}

func (d *fakeDevice) CreateMesh(_ uint32, attrib string, _ []float32, indices []uint16) error {
	d.calls = append(d.calls, "mesh")
	d.meshAttribs = append(d.meshAttribs, attrib)
	d.meshIndices = append(d.meshIndices, indices)
	return nil
}

func (d *fakeDevice) CreateEmptyVertexArray() error {
	d.calls = append(d.calls, "vao")
	d.emptyVAOs++
	return nil
}

func (d *fakeDevice) ActiveSubroutineUniformLocations(uint32, surfaces.Stage) int {
	return d.activeSlots
}

func (d *fakeDevice) SubroutineUniformLocation(_ uint32, _ surfaces.Stage, name string) int32 {
	if loc, ok := d.locations[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDevice) SubroutineIndex(_ uint32, _ surfaces.Stage, name string) (uint32, bool) {
	idx, ok := d.routines[name]
	return idx, ok
}

func (d *fakeDevice) UniformSubroutines(_ surfaces.Stage, indices []uint32) {
	d.calls = append(d.calls, "subroutines")
	d.bound = append(d.bound, append([]uint32(nil), indices...))
}

func (d *fakeDevice) ReadFramebuffer() (surfaces.Framebuffer, error) {
	d.calls = append(d.calls, "read")
	d.reads++
	fb := d.framebuffer
	fb.Pix = append([]byte(nil), fb.Pix...)
	return fb, nil
}

func (d *fakeDevice) Prepare(clear [4]float32) {
	d.calls = append(d.calls, "prepare")
	d.prepared = append(d.prepared, clear)
}

func (d *fakeDevice) SetUniforms(_ uint32, u surfaces.Uniforms) {
	d.calls = append(d.calls, "uniforms")
	d.uniforms = append(d.uniforms, u)
}

func (d *fakeDevice) CreateTexture(_ uint32, sampler string, img *surfaces.TextureImage) error {
	d.calls = append(d.calls, "texture")
	d.samplers = append(d.samplers, sampler)
	d.textures = append(d.textures, img)
	return nil
}

func (d *fakeDevice) Clear() { d.calls = append(d.calls, "clear") }

func (d *fakeDevice) Draw(call surfaces.DrawCall) {
	d.calls = append(d.calls, "draw")
	d.draws = append(d.draws, call)
}

func (d *fakeDevice) Err() error {
	err := d.errOnce
	d.errOnce = nil
	return err
}

// sources is an in-memory SourceLookup.
type sources map[string]string

func (s sources) Source(key string) (string, bool) {
	src, ok := s[key]
	return src, ok
}
