package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarToleranceEquality(t *testing.T) {
	assert.True(t, S(1.0).Eq(1.0+1e-7))
	assert.True(t, S(1.0).Eq(1.0-1e-7))
	assert.False(t, S(1.0).Eq(1.0+1e-5))

	assert.True(t, S(2.0).Lte(2.0+1e-8))
	assert.True(t, S(2.0).Lte(3.0))
	assert.False(t, S(2.0).Lte(1.0))

	assert.True(t, S(5.0).Gte(5.0-1e-8))
	assert.True(t, S(5.0).Gte(4.0))
	assert.False(t, S(5.0).Gte(6.0))
}

func TestScalarIsInteger(t *testing.T) {
	assert.True(t, S(3.0).IsInteger())
	assert.True(t, S(-7.0).IsInteger())
	assert.True(t, S(4.0000001).IsInteger())
	assert.False(t, S(4.5).IsInteger())
	assert.False(t, S(0.001).IsInteger())
}

func TestScalarExactOps(t *testing.T) {
	assert.Equal(t, S(1), Sign(42))
	assert.Equal(t, S(-1), Sign(-0.5))
	assert.Equal(t, S(0), Sign(0))

	assert.Equal(t, S(3), Clamp(10, -3, 3))
	assert.Equal(t, S(-3), Clamp(-10, -3, 3))
	assert.Equal(t, S(1), Clamp(1, -3, 3))

	assert.Equal(t, S(2), Min(2, 9))
	assert.Equal(t, S(9), Max(2, 9))
	assert.Equal(t, S(4), Abs(-4))
}

func TestFloorRoundTrunc(t *testing.T) {
	assert.Equal(t, S(2), Floor(2.9))
	assert.Equal(t, S(-3), Floor(-2.1))
	assert.Equal(t, S(3), Round(2.5))
	assert.Equal(t, S(-3), Round(-2.5))
	assert.Equal(t, S(-2), Trunc(-2.9))
}

func TestDivisionByZeroYieldsNonFinite(t *testing.T) {
	var zero Scalar
	assert.True(t, math.IsInf(float64(S(1)/zero), 1))
	assert.True(t, math.IsInf(float64(S(-1)/zero), -1))
	assert.True(t, IsNaN(zero/zero))
	assert.True(t, IsNaN(Mod(1, 0)))
}

// The self-contained transcendentals must agree with libm within Epsilon
// over the ranges geometry exercises.

func TestSqrtAgainstLibm(t *testing.T) {
	for x := 0.0; x <= 10000; x += 0.37 {
		want := math.Sqrt(x)
		got := float64(Sqrt(S(x)))
		require.InDelta(t, want, got, 1e-6, "sqrt(%v)", x)
	}
	assert.Equal(t, S(0), Sqrt(0))
	assert.True(t, IsNaN(Sqrt(-1)))
}

func TestTrigAgainstLibm(t *testing.T) {
	for a := -4 * math.Pi; a <= 4*math.Pi; a += 0.0173 {
		require.InDelta(t, math.Sin(a), float64(Sin(S(a))), 1e-6, "sin(%v)", a)
		require.InDelta(t, math.Cos(a), float64(Cos(S(a))), 1e-6, "cos(%v)", a)
	}
}

func TestAtan2AgainstLibm(t *testing.T) {
	points := [][2]float64{
		{0, 1}, {1, 0}, {0, -1}, {-1, 0},
		{3, 4}, {-3, 4}, {3, -4}, {-3, -4},
		{1e-3, 1}, {100, 0.5}, {-0.5, -100},
	}
	for _, p := range points {
		y, x := p[0], p[1]
		require.InDelta(t, math.Atan2(y, x), float64(Atan2(S(y), S(x))), 1e-6, "atan2(%v,%v)", y, x)
	}
	assert.Equal(t, S(0), Atan2(0, 0))
}

func TestAsinAcosAgainstLibm(t *testing.T) {
	for x := -1.0; x <= 1.0; x += 0.01 {
		require.InDelta(t, math.Asin(x), float64(Asin(S(x))), 1e-6, "asin(%v)", x)
		require.InDelta(t, math.Acos(x), float64(Acos(S(x))), 1e-6, "acos(%v)", x)
	}
}

func TestExpLogAgainstLibm(t *testing.T) {
	for x := -20.0; x <= 20.0; x += 0.13 {
		require.InDelta(t, math.Exp(x), float64(Exp(S(x))), 1e-6*math.Max(1, math.Exp(x)), "exp(%v)", x)
	}
	for x := 1e-6; x <= 1e6; x *= 1.7 {
		require.InDelta(t, math.Log(x), float64(Log(S(x))), 1e-6, "log(%v)", x)
	}
	assert.True(t, math.IsInf(float64(Log(0)), -1))
	assert.True(t, IsNaN(Log(-3)))
}

func TestPow(t *testing.T) {
	assert.InDelta(t, 8.0, float64(Pow(2, 3)), 1e-6)
	assert.InDelta(t, 0.25, float64(Pow(2, -2)), 1e-6)
	assert.InDelta(t, -27.0, float64(Pow(-3, 3)), 1e-4)
	assert.InDelta(t, math.Pow(2.5, 3.5), float64(Pow(2.5, 3.5)), 1e-5)
	assert.Equal(t, S(1), Pow(7, 0))
	assert.True(t, IsNaN(Pow(-2, 0.5)))
}
