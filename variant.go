package surfaces

// SurfaceVariant names the subroutines that evaluate one surface. Normal is
// empty when the pipeline exposes a single combined slot.
type SurfaceVariant struct {
	Name    string `toml:"name"`
	Surface string `toml:"surface"`
	Normal  string `toml:"normal"`
}

// Subroutine uniform slot names in the tessellation-evaluation shaders.
const (
	SurfaceSlot = "SurfaceFunc"
	NormalSlot  = "NormalFunc"
)

// TorusVariants alternate between the plain and ridged torus, each with its
// own analytic normal routine.
var TorusVariants = []SurfaceVariant{
	{Name: "SimpleTorus", Surface: "SimpleTorusSurface", Normal: "SimpleTorusNormal"},
	{Name: "RidgedTorus", Surface: "RidgedTorusSurface", Normal: "RidgedTorusNormal"},
}

// SurfaceVariants cycle through every surface of the patchless demo.
// Normals are derived from the surface routine by finite differences.
var SurfaceVariants = []SurfaceVariant{
	{Name: "SimpleTorus", Surface: "SimpleTorus"},
	{Name: "RidgedTorus", Surface: "RidgedTorus"},
	{Name: "SuperellipseTorus", Surface: "SuperellipseTorus"},
	{Name: "SuperellipseMobius", Surface: "SuperellipseMobius"},
	{Name: "Spiral", Surface: "Spiral"},
}
