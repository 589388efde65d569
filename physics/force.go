package physics

import "github.com/lixenwraith/planar/vmath"

// Force is the single capability every generator reduces to: one resultant
// vector per tick. The set of variants below is closed; there is no
// overridable hierarchy.
type Force interface {
	Resultant() vmath.Vec
}

// Constant contributes a fixed vector every tick it is registered
type Constant struct {
	Value vmath.Vec
}

func (c Constant) Resultant() vmath.Vec { return c.Value }

// Directional contributes direction × magnitude. A zero-magnitude direction
// reduces to the zero vector rather than dividing by zero.
type Directional struct {
	Direction vmath.Vec
	Magnitude vmath.Scalar
}

func (d Directional) Resultant() vmath.Vec {
	return d.Direction.Normalize().Scale(d.Magnitude)
}

// Generator computes its contribution each tick, typically a closure over
// the body it drives (controller input, homing, drag). A nil compute
// function reduces to zero.
type Generator struct {
	Compute func() vmath.Vec
}

func (g Generator) Resultant() vmath.Vec {
	if g.Compute == nil {
		return vmath.Vec{}
	}
	return g.Compute()
}
