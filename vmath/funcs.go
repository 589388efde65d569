package vmath

import "math"

// Transcendental functions implemented with range reduction plus series /
// Newton iteration so results are identical on every platform, independent
// of the host libm. Accuracy target is well inside Epsilon for the ranges
// geometry uses: angles in [0, 2π], magnitudes up to scene scale.

const (
	Pi     Scalar = 3.14159265358979323846
	TwoPi  Scalar = 2 * Pi
	HalfPi Scalar = Pi / 2
	Ln2    Scalar = 0.69314718055994530942
	// sqrt2 splits the mantissa range so the Log series argument stays small
	sqrt2 Scalar = 1.41421356237309504880
)

// Inf returns the platform infinity with the given sign
func Inf(sign int) Scalar { return Scalar(math.Inf(sign)) }

// NaN returns the platform quiet NaN
func NaN() Scalar { return Scalar(math.NaN()) }

// IsNaN reports whether s is NaN
func IsNaN(s Scalar) bool { return s != s }

// Sqrt computes the square root via a bit-level inverse-sqrt estimate
// refined by Newton iterations. Negative input yields NaN, zero yields zero.
func Sqrt(s Scalar) Scalar {
	if s < 0 {
		return NaN()
	}
	if s == 0 {
		return 0
	}
	x := float64(s)
	i := math.Float64bits(x)
	i = 0x5FE6EB50C7B537A9 - (i >> 1)
	y := math.Float64frombits(i)
	half := 0.5 * x
	// Four iterations take the ~3% seed error below float64 noise
	y = y * (1.5 - half*y*y)
	y = y * (1.5 - half*y*y)
	y = y * (1.5 - half*y*y)
	y = y * (1.5 - half*y*y)
	return Scalar(x * y)
}

// Sin computes sine by reducing the argument to [-π/2, π/2] and summing the
// odd Taylor series through x^13
func Sin(s Scalar) Scalar {
	x := Mod(s, TwoPi)
	if x > Pi {
		x -= TwoPi
	} else if x < -Pi {
		x += TwoPi
	}
	if x > HalfPi {
		x = Pi - x
	} else if x < -HalfPi {
		x = -Pi - x
	}
	x2 := x * x
	// Horner form of x - x³/3! + x⁵/5! - ... + x¹³/13!
	return x * (1 - x2/6*(1-x2/20*(1-x2/42*(1-x2/72*(1-x2/110*(1-x2/156))))))
}

// Cos computes cosine via the sine phase shift
func Cos(s Scalar) Scalar {
	return Sin(s + HalfPi)
}

// Tan is Sin/Cos; near odd multiples of π/2 the result grows without bound
func Tan(s Scalar) Scalar {
	return Sin(s) / Cos(s)
}

// Atan computes arctangent with repeated argument halving
// atan(x) = 2·atan(x / (1 + √(1+x²))) until the series converges fast
func Atan(s Scalar) Scalar {
	neg := s < 0
	x := Abs(s)
	k := 0
	for x > 0.0625 && k < 40 {
		x = x / (1 + Sqrt(1+x*x))
		k++
	}
	x2 := x * x
	t := x * (1 - x2*(1.0/3.0-x2*(1.0/5.0-x2/7.0)))
	for ; k > 0; k-- {
		t *= 2
	}
	if neg {
		return -t
	}
	return t
}

// Atan2 computes the angle of (x, y) in (-π, π]
func Atan2(y, x Scalar) Scalar {
	switch {
	case x > 0:
		return Atan(y / x)
	case x < 0:
		if y >= 0 {
			return Atan(y/x) + Pi
		}
		return Atan(y/x) - Pi
	case y > 0:
		return HalfPi
	case y < 0:
		return -HalfPi
	}
	return 0
}

// Asin computes arcsine for inputs in [-1, 1]
func Asin(s Scalar) Scalar {
	if s <= -1 {
		return -HalfPi
	}
	if s >= 1 {
		return HalfPi
	}
	return Atan2(s, Sqrt(1-s*s))
}

// Acos computes arccosine for inputs in [-1, 1]
func Acos(s Scalar) Scalar {
	if s <= -1 {
		return Pi
	}
	if s >= 1 {
		return 0
	}
	return Atan2(Sqrt(1-s*s), s)
}

// Exp computes e^s with base-2 reduction: s = k·ln2 + r, e^s = 2^k · e^r
func Exp(s Scalar) Scalar {
	if IsNaN(s) {
		return s
	}
	k := Round(s / Ln2)
	if k > 1030 {
		return Inf(1)
	}
	if k < -1080 {
		return 0
	}
	r := s - k*Ln2
	// Taylor through r^12/12!, |r| <= ln2/2
	sum := Scalar(1)
	term := Scalar(1)
	for n := Scalar(1); n <= 12; n++ {
		term *= r / n
		sum += term
	}
	return sum * pow2(int(k))
}

// Log computes the natural logarithm via the atanh series on the reduced
// mantissa. Zero yields -Inf, negative input yields NaN.
func Log(s Scalar) Scalar {
	if s < 0 || IsNaN(s) {
		return NaN()
	}
	if s == 0 {
		return Inf(-1)
	}
	m := s
	k := 0
	for m >= 2 {
		m /= 2
		k++
	}
	for m < 1 {
		m *= 2
		k--
	}
	if m > sqrt2 {
		m /= 2
		k++
	}
	t := (m - 1) / (m + 1)
	t2 := t * t
	// 2·(t + t³/3 + t⁵/5 + ... + t¹¹/11), |t| <= √2-1 keeps this inside 1e-11
	sum := t * (1 + t2*(1.0/3.0+t2*(1.0/5.0+t2*(1.0/7.0+t2*(1.0/9.0+t2/11.0)))))
	return 2*sum + Scalar(k)*Ln2
}

// Pow computes a^b. Negative base requires a whole exponent; otherwise NaN.
func Pow(a, b Scalar) Scalar {
	if b == 0 {
		return 1
	}
	if a == 0 {
		if b < 0 {
			return Inf(1)
		}
		return 0
	}
	if a < 0 {
		if !b.IsInteger() {
			return NaN()
		}
		r := Exp(b * Log(-a))
		if Mod(Round(b), 2) != 0 {
			return -r
		}
		return r
	}
	return Exp(b * Log(a))
}

// pow2 computes 2^k by squaring
func pow2(k int) Scalar {
	neg := k < 0
	if neg {
		k = -k
	}
	result := Scalar(1)
	base := Scalar(2)
	for k > 0 {
		if k&1 == 1 {
			result *= base
		}
		base *= base
		k >>= 1
	}
	if neg {
		return 1 / result
	}
	return result
}
