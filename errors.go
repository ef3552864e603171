package surfaces

import "errors"

// Errors returned by the pipeline. Every one of them is fatal for a demo:
// callers wrap them with context and hand them back to main.
var (
	// ErrShaderNotFound is returned when a stage name has no source.
	ErrShaderNotFound = errors.New("shader source not found")
	// ErrMissingVertexStage is returned when a StageSet has no vertex stage.
	ErrMissingVertexStage = errors.New("vertex stage is required")
	// ErrCompile wraps a shader compiler diagnostic.
	ErrCompile = errors.New("shader compilation failed")
	// ErrLink wraps a program linker diagnostic.
	ErrLink = errors.New("program link failed")

	// ErrSlotMismatch is returned when the tessellation-evaluation stage
	// exposes a different number of subroutine uniforms than expected.
	ErrSlotMismatch = errors.New("subroutine uniform slot count mismatch")
	// ErrSubroutineNotFound is returned for an unknown subroutine or slot name.
	ErrSubroutineNotFound = errors.New("subroutine not found")

	// ErrInvalidGrid is returned for grids smaller than 2x2.
	ErrInvalidGrid = errors.New("grid needs at least 2 slices and 2 stacks")
	// ErrGridTooLarge is returned when grid indices would not fit 16 bits.
	ErrGridTooLarge = errors.New("grid has too many vertices for 16-bit indices")
	// ErrInvalidPatch is returned for patch sizes other than 3 or 4.
	ErrInvalidPatch = errors.New("patch vertices must be 3 or 4")

	// ErrUnsupportedFormat is returned for images that are not 8 bits per
	// channel or whose pixel layout is not RGB, RGBA or gray.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrCaptureOutput is returned when a screenshot file cannot be created.
	ErrCaptureOutput = errors.New("cannot write capture")

	// ErrUnknownDemo is returned by LookupDemo for unregistered names.
	ErrUnknownDemo = errors.New("unknown demo")
	// ErrGL is returned by backends when the GL error flag is set.
	ErrGL = errors.New("opengl error")
)
