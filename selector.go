package surfaces

import (
	"fmt"

	"github.com/chewxy/math32"
)

// SelectorConfig describes the time-bucketed surface rotation.
type SelectorConfig struct {
	// Variants is the ordered table indexed by bucket number.
	Variants []SurfaceVariant
	// BucketSeconds is the width of each time bucket.
	BucketSeconds float32
	// Period wraps the clock before bucketing. Zero means one full cycle,
	// BucketSeconds * len(Variants).
	Period float32
	// Slots is the number of subroutine uniforms the tessellation-evaluation
	// stage must expose: 1 (surface only) or 2 (surface and normal).
	Slots int
}

// Enabled reports whether there is anything to select.
func (c SelectorConfig) Enabled() bool { return len(c.Variants) > 0 }

func (c SelectorConfig) period() float32 {
	if c.Period > 0 {
		return c.Period
	}
	return c.BucketSeconds * float32(len(c.Variants))
}

// BucketIndex maps elapsed time to a variant index. It is a pure function
// of t and the configuration.
func (c SelectorConfig) BucketIndex(t float32) int {
	n := len(c.Variants)
	if n == 0 || c.BucketSeconds <= 0 {
		return 0
	}
	p := c.period()
	m := math32.Mod(t, p)
	if m < 0 {
		m += p
	}
	return int(math32.Floor(m/c.BucketSeconds)) % n
}

func (c SelectorConfig) validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.BucketSeconds <= 0 {
		return fmt.Errorf("bucket width must be positive, got %v", c.BucketSeconds)
	}
	if c.Slots != 1 && c.Slots != 2 {
		return fmt.Errorf("selector slots must be 1 or 2, got %d: %w", c.Slots, ErrSlotMismatch)
	}
	for _, v := range c.Variants {
		if v.Surface == "" || (c.Slots == 2 && v.Normal == "") {
			return fmt.Errorf("variant %q is missing a routine for %d slots: %w", v.Name, c.Slots, ErrSubroutineNotFound)
		}
	}
	return nil
}

// Selector chooses the active surface routine for the tessellation-evaluation
// stage. Subroutine uniforms are only rebound when the bucket changes.
type Selector struct {
	cfg      SelectorConfig
	binder   SubroutineBinder
	program  uint32
	active   int
	bindings int
}

// NewSelector validates cfg and returns a selector with nothing bound yet.
func NewSelector(binder SubroutineBinder, program uint32, cfg SelectorConfig) (*Selector, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Selector{cfg: cfg, binder: binder, program: program, active: -1}, nil
}

// Config returns the selector configuration.
func (s *Selector) Config() SelectorConfig { return s.cfg }

// ActiveIndex returns the bound variant index, or -1 before the first bind.
func (s *Selector) ActiveIndex() int { return s.active }

// Active returns the bound variant. ok is false before the first bind.
func (s *Selector) Active() (v SurfaceVariant, ok bool) {
	if s.active < 0 {
		return SurfaceVariant{}, false
	}
	return s.cfg.Variants[s.active], true
}

// Bindings returns how many times subroutines were bound.
func (s *Selector) Bindings() int { return s.bindings }

// Update selects the variant for time t. changed is true when a new
// variant was bound during this call.
func (s *Selector) Update(t float32) (changed bool, err error) {
	if !s.cfg.Enabled() {
		return false, nil
	}
	idx := s.cfg.BucketIndex(t)
	if idx == s.active {
		return false, nil
	}
	if err := s.bind(idx); err != nil {
		return false, err
	}
	s.active = idx
	s.bindings++
	Logger().Info("surface changed", "surface", s.cfg.Variants[idx].Name, "time", t)
	return true, nil
}

func (s *Selector) bind(idx int) error {
	stage := StageTessEval
	if got := s.binder.ActiveSubroutineUniformLocations(s.program, stage); got != s.cfg.Slots {
		return fmt.Errorf("%s stage exposes %d subroutine uniforms, want %d: %w", stage, got, s.cfg.Slots, ErrSlotMismatch)
	}

	v := s.cfg.Variants[idx]
	slots := []string{SurfaceSlot, NormalSlot}[:s.cfg.Slots]
	routines := []string{v.Surface, v.Normal}[:s.cfg.Slots]

	indices := make([]uint32, s.cfg.Slots)
	for i, slot := range slots {
		loc := s.binder.SubroutineUniformLocation(s.program, stage, slot)
		if loc < 0 || int(loc) >= len(indices) {
			return fmt.Errorf("subroutine uniform %q: %w", slot, ErrSubroutineNotFound)
		}
		routine, ok := s.binder.SubroutineIndex(s.program, stage, routines[i])
		if !ok {
			return fmt.Errorf("subroutine %q for %s: %w", routines[i], v.Name, ErrSubroutineNotFound)
		}
		Logger().Debug("subroutine resolved", "slot", slot, "location", loc, "routine", routines[i], "index", routine)
		indices[loc] = routine
	}
	s.binder.UniformSubroutines(stage, indices)
	return nil
}
