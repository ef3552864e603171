package surfaces

import "fmt"

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageTessControl
	StageTessEval
	StageGeometry
	StageFragment
)

// String returns the short stage name used in diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageTessControl:
		return "tess-control"
	case StageTessEval:
		return "tess-evaluation"
	case StageGeometry:
		return "geometry"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// SourceLookup resolves a logical shader name to its source text.
type SourceLookup interface {
	Source(key string) (string, bool)
}

// StageSet names the source of each stage. Only Vertex is required; an
// empty name leaves the stage out of the program.
type StageSet struct {
	Vertex      string `toml:"vertex"`
	TessControl string `toml:"tess_control"`
	TessEval    string `toml:"tess_eval"`
	Geometry    string `toml:"geometry"`
	Fragment    string `toml:"fragment"`
}

// StageSource is a resolved stage ready to compile.
type StageSource struct {
	Stage  Stage
	Key    string
	Source string
}

// Keys returns the present stages in pipeline order.
func (s StageSet) Keys() []StageSource {
	all := []StageSource{
		{Stage: StageVertex, Key: s.Vertex},
		{Stage: StageTessControl, Key: s.TessControl},
		{Stage: StageTessEval, Key: s.TessEval},
		{Stage: StageGeometry, Key: s.Geometry},
		{Stage: StageFragment, Key: s.Fragment},
	}
	present := all[:0]
	for _, st := range all {
		if st.Key != "" {
			present = append(present, st)
		}
	}
	return present
}

// Resolve looks up every present stage. It fails on the first missing
// source, so nothing is compiled for an incomplete set.
func (s StageSet) Resolve(src SourceLookup) ([]StageSource, error) {
	if s.Vertex == "" {
		return nil, ErrMissingVertexStage
	}
	stages := s.Keys()
	for i := range stages {
		text, ok := src.Source(stages[i].Key)
		if !ok {
			return nil, fmt.Errorf("%s shader %q: %w", stages[i].Stage, stages[i].Key, ErrShaderNotFound)
		}
		stages[i].Source = text
	}
	return stages, nil
}

// AssembleProgram compiles and links the stage set into one program and
// makes it current.
func AssembleProgram(dev ShaderCompiler, src SourceLookup, set StageSet) (uint32, error) {
	stages, err := set.Resolve(src)
	if err != nil {
		return 0, err
	}

	shaders := make([]uint32, 0, len(stages))
	for _, st := range stages {
		handle, err := dev.CompileShader(st.Stage, st.Source)
		if err != nil {
			for _, sh := range shaders {
				dev.DeleteShader(sh)
			}
			return 0, fmt.Errorf("compile %s shader %q: %w", st.Stage, st.Key, err)
		}
		shaders = append(shaders, handle)
	}

	program, err := dev.LinkProgram(shaders)
	if err != nil {
		return 0, fmt.Errorf("link %s: %w", set.Vertex, err)
	}
	dev.UseProgram(program)

	Logger().Info("program linked", "program", program, "stages", len(stages))
	return program, nil
}
