package geom

import (
	"errors"

	"github.com/lixenwraith/planar/vmath"
)

// ErrDegenerate is returned when inertia is requested for a polygon whose
// triangulation has zero total area.
var ErrDegenerate = errors.New("geom: degenerate polygon, zero area")

// MomentOfInertia computes the moment of inertia of the polygon about its
// centroid for the given mass. The polygon is triangulated as a fan from
// vertex 0; each triangle contributes its own inertia shifted to the
// polygon centroid by the parallel-axis theorem. Mass is distributed by
// triangle area.
func (p *Polygon) MomentOfInertia(mass vmath.Scalar) (vmath.Scalar, error) {
	if len(p.vertices) < 3 {
		return 0, ErrTooFewVertices
	}

	type tri struct {
		area     vmath.Scalar
		centroid vmath.Vec
		local    vmath.Scalar // inertia about own centroid per unit mass
	}

	v0 := p.vertices[0]
	tris := make([]tri, 0, len(p.vertices)-2)
	var totalArea vmath.Scalar

	for i := 1; i < len(p.vertices)-1; i++ {
		a, b, c := v0, p.vertices[i], p.vertices[i+1]
		ab := b.Sub(a)
		ac := c.Sub(a)
		area := vmath.Abs(ab.Cross(ac).Z) / 2
		if area == 0 {
			continue
		}
		centroid := a.Add(b).Add(c).Scale(1.0 / 3.0)
		// Lamina inertia about its centroid: (a² + b² + c²) / 36 per unit mass
		sides := ab.MagnitudeSq() + c.Sub(b).MagnitudeSq() + a.Sub(c).MagnitudeSq()
		tris = append(tris, tri{area: area, centroid: centroid, local: sides / 36})
		totalArea += area
	}

	if totalArea == 0 {
		return 0, ErrDegenerate
	}

	ref := p.Centroid()
	var inertia vmath.Scalar
	for _, t := range tris {
		triMass := mass * t.area / totalArea
		d2 := t.centroid.Sub(ref).MagnitudeSq()
		inertia += triMass*t.local + triMass*d2
	}
	return inertia, nil
}
