package vmath

// Vec is a 4-lane numeric tuple. The 2D lanes X, Y carry nearly all of the
// simulation; Z participates in Cross and W rides along for affine use.
// All operations are pure and return new values.
type Vec struct {
	X, Y, Z, W Scalar
}

// V2 builds a 2D vector
func V2(x, y Scalar) Vec { return Vec{X: x, Y: y} }

// V3 builds a 3-lane vector
func V3(x, y, z Scalar) Vec { return Vec{X: x, Y: y, Z: z} }

// Add returns v + o lane-wise
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v - o lane-wise
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale multiplies every lane by f
func (v Vec) Scale(f Scalar) Vec {
	return Vec{v.X * f, v.Y * f, v.Z * f, v.W * f}
}

// Dot returns the 4-lane dot product
func (v Vec) Dot(o Vec) Scalar {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Cross returns the 3-lane cross product; W is zero
func (v Vec) Cross(o Vec) Vec {
	return Vec{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// MagnitudeSq returns squared length without the sqrt
func (v Vec) MagnitudeSq() Scalar {
	return v.Dot(v)
}

// Magnitude returns vector length
func (v Vec) Magnitude() Scalar {
	return Sqrt(v.MagnitudeSq())
}

// Normalize returns the unit vector; the zero vector normalizes to zero
func (v Vec) Normalize() Vec {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec{}
	}
	return v.Scale(1 / mag)
}

// Perp returns the 2D perpendicular (y, -x), the SAT axis basis
func (v Vec) Perp() Vec {
	return Vec{X: v.Y, Y: -v.X}
}

// Distance returns |v - o|
func (v Vec) Distance(o Vec) Scalar {
	return v.Sub(o).Magnitude()
}

// Project returns the projection of v onto o; projecting onto the zero
// vector returns zero
func (v Vec) Project(o Vec) Vec {
	den := o.MagnitudeSq()
	if den == 0 {
		return Vec{}
	}
	return o.Scale(v.Dot(o) / den)
}

// Reflect returns v mirrored across the plane with unit normal n
// v' = v - 2·(v·n)·n
func (v Vec) Reflect(n Vec) Vec {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Lerp interpolates from v to o by t, unclamped
func (v Vec) Lerp(o Vec, t Scalar) Vec {
	return v.Add(o.Sub(v).Scale(t))
}

// Angle returns the unsigned angle between v and o in [0, π] via
// clamped-dot arccos; zero-length input yields zero
func (v Vec) Angle(o Vec) Scalar {
	den := v.Magnitude() * o.Magnitude()
	if den == 0 {
		return 0
	}
	return Acos(Clamp(v.Dot(o)/den, -1, 1))
}

// SignedAngle returns the 2D angle from v to o in (-π, π], positive
// counter-clockwise
func (v Vec) SignedAngle(o Vec) Scalar {
	return Atan2(v.X*o.Y-v.Y*o.X, v.X*o.X+v.Y*o.Y)
}

// ClampMagnitude limits length to maxMag while preserving direction
func (v Vec) ClampMagnitude(maxMag Scalar) Vec {
	magSq := v.MagnitudeSq()
	if magSq <= maxMag*maxMag || magSq == 0 {
		return v
	}
	return v.Scale(maxMag / Sqrt(magSq))
}

// Rotate rotates the 2D lanes by angle radians counter-clockwise
func (v Vec) Rotate(angle Scalar) Vec {
	cos := Cos(angle)
	sin := Sin(angle)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
		W: v.W,
	}
}

// Eq is component-wise tolerance equality, not bit-exact
func (v Vec) Eq(o Vec) bool {
	return v.X.Eq(o.X) && v.Y.Eq(o.Y) && v.Z.Eq(o.Z) && v.W.Eq(o.W)
}

// IsZero reports whether every lane is within tolerance of zero
func (v Vec) IsZero() bool {
	return v.Eq(Vec{})
}
