package physics

import (
	"github.com/lixenwraith/planar/geom"
	"github.com/lixenwraith/planar/vmath"
)

// MTV is the minimum translation vector separating two overlapping convex
// polygons: the axis of least penetration and the penetration depth. The
// axis always points from polygon A toward polygon B, so callers push B
// along +Axis and A along -Axis.
type MTV struct {
	Axis  vmath.Vec
	Depth vmath.Scalar
}

// Resolution runs the separating-axis test over every candidate axis of
// both polygons. Any axis with disjoint projections means no collision.
// Otherwise the axis with the strictly smallest 1D overlap survives (ties
// keep the first-seen axis) and is oriented from a's center toward b's.
func Resolution(a, b *geom.Polygon) (MTV, bool) {
	axes := append(a.Axes(), b.Axes()...)

	var best MTV
	found := false

	for _, axis := range axes {
		// Degenerate edges normalize to zero; they carry no separation info
		if axis.MagnitudeSq() == 0 {
			continue
		}

		minA, maxA := a.Project(axis)
		minB, maxB := b.Project(axis)
		if minA > maxB || minB > maxA {
			return MTV{}, false
		}

		overlap := vmath.Min(maxA-minB, maxB-minA)
		if !found || overlap < best.Depth {
			best = MTV{Axis: axis, Depth: overlap}
			found = true
		}
	}

	if !found {
		return MTV{}, false
	}

	centerA := a.Centroid().Add(a.Position)
	centerB := b.Centroid().Add(b.Position)
	if best.Axis.Dot(centerB.Sub(centerA)) < 0 {
		best.Axis = best.Axis.Scale(-1)
	}
	return best, true
}

// Check is the boolean-only SAT overlap test: no depth, no mutation
func Check(a, b *geom.Polygon) bool {
	for _, axis := range append(a.Axes(), b.Axes()...) {
		if axis.MagnitudeSq() == 0 {
			continue
		}
		minA, maxA := a.Project(axis)
		minB, maxB := b.Project(axis)
		if minA > maxB || minB > maxA {
			return false
		}
	}
	return true
}

// CheckAll reports whether any unordered pair of bodies overlaps
func CheckAll(bodies []*RigidBody) bool {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if Check(bodies[i].Polygon(), bodies[j].Polygon()) {
				return true
			}
		}
	}
	return false
}

// Resolve applies positional correction to a colliding pair. Two finite
// masses each back off half the depth. Against an immovable body the finite
// body alone absorbs a quarter-depth correction, a simplification kept
// over an exact physical response. Both dynamic velocities reset to zero;
// restitution is stored on the body but no impulse response is computed
// here.
func Resolve(a, b *RigidBody) {
	mtv, ok := Resolution(a.Polygon(), b.Polygon())
	if !ok {
		return
	}

	switch {
	case !a.IsStatic() && !b.IsStatic():
		half := mtv.Depth / 2
		a.Translate(mtv.Axis.Scale(-half))
		b.Translate(mtv.Axis.Scale(half))
	case a.IsStatic() && !b.IsStatic():
		b.Translate(mtv.Axis.Scale(mtv.Depth / 4))
	case !a.IsStatic() && b.IsStatic():
		a.Translate(mtv.Axis.Scale(-mtv.Depth / 4))
	}

	if !a.IsStatic() {
		a.SetVelocity(vmath.Vec{})
		a.Update()
	}
	if !b.IsStatic() {
		b.SetVelocity(vmath.Vec{})
		b.Update()
	}
}

// ResolveAll visits every unordered pair of bodies exactly once and
// resolves the colliding ones
func ResolveAll(bodies []*RigidBody) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			Resolve(bodies[i], bodies[j])
		}
	}
}
