package vmath

// Scalar wraps one real number. Comparisons are tolerance-based so logic
// built on equality survives accumulated rounding; equality is therefore
// not transitive at extreme magnitudes.
type Scalar float64

// Epsilon is the fixed absolute-difference tolerance used by Eq, Lte, Gte
// and IsInteger
const Epsilon Scalar = 1e-6

// S converts a float64 literal to Scalar
func S(f float64) Scalar { return Scalar(f) }

// Float returns the underlying float64
func (s Scalar) Float() float64 { return float64(s) }

// Eq reports |s-o| <= Epsilon
func (s Scalar) Eq(o Scalar) bool {
	return Abs(s-o) <= Epsilon
}

// Lte reports s <= o within tolerance
func (s Scalar) Lte(o Scalar) bool {
	return s < o || s.Eq(o)
}

// Gte reports s >= o within tolerance
func (s Scalar) Gte(o Scalar) bool {
	return s > o || s.Eq(o)
}

// IsInteger reports whether s is within Epsilon of a whole number
func (s Scalar) IsInteger() bool {
	return s.Eq(Round(s))
}

// Abs returns absolute value
func Abs(s Scalar) Scalar {
	if s < 0 {
		return -s
	}
	return s
}

// Sign returns -1, 0, or 1, exact
func Sign(s Scalar) Scalar {
	if s < 0 {
		return -1
	}
	if s > 0 {
		return 1
	}
	return 0
}

// Min returns the smaller of a and b, exact
func Min(a, b Scalar) Scalar {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b, exact
func Max(a, b Scalar) Scalar {
	if a > b {
		return a
	}
	return b
}

// Clamp limits s to [lo, hi], exact
func Clamp(s, lo, hi Scalar) Scalar {
	if s < lo {
		return lo
	}
	if s > hi {
		return hi
	}
	return s
}

// Floor returns the largest whole Scalar <= s
// Valid over scene-scale magnitudes (|s| < 2^62)
func Floor(s Scalar) Scalar {
	n := Scalar(int64(s))
	if s < 0 && n != s {
		return n - 1
	}
	return n
}

// Round returns the nearest whole Scalar, half away from zero
func Round(s Scalar) Scalar {
	if s < 0 {
		return -Floor(-s + 0.5)
	}
	return Floor(s + 0.5)
}

// Trunc drops the fractional part toward zero
func Trunc(s Scalar) Scalar {
	return Scalar(int64(s))
}

// Mod returns the remainder of a/b with the sign of a; zero divisor yields
// NaN per the division policy
func Mod(a, b Scalar) Scalar {
	if b == 0 {
		return a / b
	}
	return a - Trunc(a/b)*b
}
