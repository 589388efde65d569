package geom

import "github.com/lixenwraith/planar/vmath"

// Canonical shape constructors. Pure data: every call returns a fresh
// polygon at the origin with zero rotation.

// defaultCircleSides balances roundness against per-axis SAT cost
const defaultCircleSides = 16

// Rect builds a w×h rectangle centered on the origin, CCW winding
func Rect(w, h vmath.Scalar) *Polygon {
	hw, hh := w/2, h/2
	return &Polygon{vertices: []vmath.Vec{
		vmath.V2(-hw, -hh),
		vmath.V2(hw, -hh),
		vmath.V2(hw, hh),
		vmath.V2(-hw, hh),
	}}
}

// Square builds a side×side rectangle
func Square(side vmath.Scalar) *Polygon {
	return Rect(side, side)
}

// Triangle builds a right triangle with legs w and h along the axes
func Triangle(w, h vmath.Scalar) *Polygon {
	return &Polygon{vertices: []vmath.Vec{
		vmath.V2(0, 0),
		vmath.V2(w, 0),
		vmath.V2(0, h),
	}}
}

// Isosceles builds an isosceles triangle with base w centered under apex h
func Isosceles(w, h vmath.Scalar) *Polygon {
	hw := w / 2
	return &Polygon{vertices: []vmath.Vec{
		vmath.V2(-hw, 0),
		vmath.V2(hw, 0),
		vmath.V2(0, h),
	}}
}

// Circle approximates a circle of the given radius with an N-gon; sides < 3
// falls back to the default of 16
func Circle(radius vmath.Scalar, sides int) *Polygon {
	if sides < 3 {
		sides = defaultCircleSides
	}
	vs := make([]vmath.Vec, sides)
	step := vmath.TwoPi / vmath.Scalar(sides)
	for i := 0; i < sides; i++ {
		angle := step * vmath.Scalar(i)
		vs[i] = vmath.V2(radius*vmath.Cos(angle), radius*vmath.Sin(angle))
	}
	return &Polygon{vertices: vs}
}
