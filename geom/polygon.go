package geom

import (
	"errors"

	"github.com/lixenwraith/planar/vmath"
)

// ErrTooFewVertices is returned when a polygon is built from fewer than
// three vertices.
var ErrTooFewVertices = errors.New("geom: polygon requires at least 3 vertices")

// minAxisSq is the squared-magnitude floor below which a projection axis is
// treated as degenerate and Project short-circuits to (0,0)
const minAxisSq vmath.Scalar = 1e-4

// Polygon is an ordered, convex, counter-clockwise vertex list in local
// space plus a mutable world placement. Transformed vertices are recomputed
// on every query, never cached, so there is no invalidation to get wrong.
type Polygon struct {
	vertices []vmath.Vec

	Position vmath.Vec
	Rotation vmath.Scalar
}

// NewPolygon copies vertices into a polygon at the origin. Fails fast on
// fewer than three vertices.
func NewPolygon(vertices []vmath.Vec) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, ErrTooFewVertices
	}
	vs := make([]vmath.Vec, len(vertices))
	copy(vs, vertices)
	return &Polygon{vertices: vs}, nil
}

// Vertices returns a copy of the local vertex list
func (p *Polygon) Vertices() []vmath.Vec {
	out := make([]vmath.Vec, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// TransformedVertices returns the world-space vertices: rotate then
// translate
func (p *Polygon) TransformedVertices() []vmath.Vec {
	out := make([]vmath.Vec, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = v.Rotate(p.Rotation).Add(p.Position)
	}
	return out
}

// Centroid is the arithmetic mean of the local vertices, not the
// area-weighted center; the two differ for irregular shapes
func (p *Polygon) Centroid() vmath.Vec {
	var sum vmath.Vec
	for _, v := range p.vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / vmath.Scalar(len(p.vertices)))
}

// Axes returns one candidate separating axis per transformed edge: the
// normalized perpendicular of the edge vector
func (p *Polygon) Axes() []vmath.Vec {
	tv := p.TransformedVertices()
	axes := make([]vmath.Vec, len(tv))
	for i := range tv {
		edge := tv[(i+1)%len(tv)].Sub(tv[i])
		axes[i] = edge.Perp().Normalize()
	}
	return axes
}

// Project returns the (min, max) projection of the transformed vertices
// onto axis. An axis below the degenerate floor yields (0, 0) rather than
// blowing up on a near-zero division downstream.
func (p *Polygon) Project(axis vmath.Vec) (vmath.Scalar, vmath.Scalar) {
	if axis.MagnitudeSq() < minAxisSq {
		return 0, 0
	}
	tv := p.TransformedVertices()
	lo := tv[0].Dot(axis)
	hi := lo
	for _, v := range tv[1:] {
		d := v.Dot(axis)
		lo = vmath.Min(lo, d)
		hi = vmath.Max(hi, d)
	}
	return lo, hi
}
