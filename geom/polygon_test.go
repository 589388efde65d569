package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/planar/vmath"
)

func TestNewPolygonRejectsTooFewVertices(t *testing.T) {
	_, err := NewPolygon([]vmath.Vec{vmath.V2(0, 0), vmath.V2(1, 0)})
	assert.ErrorIs(t, err, ErrTooFewVertices)

	p, err := NewPolygon([]vmath.Vec{vmath.V2(0, 0), vmath.V2(1, 0), vmath.V2(0, 1)})
	require.NoError(t, err)
	assert.Len(t, p.Vertices(), 3)
}

func TestRectTransformedVerticesAtRest(t *testing.T) {
	p := Rect(20, 10)

	tv := p.TransformedVertices()
	require.Len(t, tv, 4)
	assert.True(t, tv[0].Eq(vmath.V2(-10, -5)))
	assert.True(t, tv[1].Eq(vmath.V2(10, -5)))
	assert.True(t, tv[2].Eq(vmath.V2(10, 5)))
	assert.True(t, tv[3].Eq(vmath.V2(-10, 5)))
}

func TestTransformRotateThenTranslate(t *testing.T) {
	p := Rect(2, 2)
	p.Position = vmath.V2(100, 50)
	p.Rotation = vmath.HalfPi

	// Local (1,1) rotates to (-1,1) then translates
	tv := p.TransformedVertices()
	assert.True(t, tv[2].Eq(vmath.V2(99, 51)))
}

func TestProjectionIsStable(t *testing.T) {
	p := Rect(20, 20)
	p.Position = vmath.V2(3, -7)
	p.Rotation = 0.3

	axis := vmath.V2(1, 2).Normalize()
	lo1, hi1 := p.Project(axis)
	lo2, hi2 := p.Project(axis)
	assert.Equal(t, lo1, lo2)
	assert.Equal(t, hi1, hi2)
	assert.Less(t, lo1.Float(), hi1.Float())
}

func TestProjectDegenerateAxisShortCircuits(t *testing.T) {
	p := Rect(20, 20)
	lo, hi := p.Project(vmath.V2(1e-3, 1e-3))
	assert.Equal(t, vmath.S(0), lo)
	assert.Equal(t, vmath.S(0), hi)
}

func TestAxesAreUnitEdgeNormals(t *testing.T) {
	p := Rect(10, 10)
	axes := p.Axes()
	require.Len(t, axes, 4)
	for _, a := range axes {
		assert.True(t, vmath.S(1).Eq(a.Magnitude()))
	}
	// Axis-aligned rectangle yields axis-aligned normals
	assert.True(t, vmath.S(0).Eq(vmath.Abs(axes[0].X)))
	assert.True(t, vmath.S(1).Eq(vmath.Abs(axes[0].Y)))
}

func TestCentroidIsVertexMean(t *testing.T) {
	p := Isosceles(6, 3)
	assert.True(t, p.Centroid().Eq(vmath.V2(0, 1)))
	// Rect centroid coincides with its center
	assert.True(t, Rect(8, 4).Centroid().IsZero())
}

func TestCircleApproximation(t *testing.T) {
	p := Circle(5, 0)
	require.Len(t, p.Vertices(), 16)
	for _, v := range p.Vertices() {
		assert.True(t, vmath.S(5).Eq(v.Magnitude()))
	}

	oct := Circle(5, 8)
	assert.Len(t, oct.Vertices(), 8)
}

func TestRectMomentOfInertia(t *testing.T) {
	// Plate formula: m(w² + h²)/12
	p := Rect(4, 2)
	inertia, err := p.MomentOfInertia(6)
	require.NoError(t, err)
	want := 6.0 * (16 + 4) / 12.0
	assert.InDelta(t, want, inertia.Float(), 1e-4)
}

func TestCircleMomentOfInertia(t *testing.T) {
	// Disc formula m·r²/2; the 32-gon should land within a percent
	p := Circle(3, 32)
	inertia, err := p.MomentOfInertia(2)
	require.NoError(t, err)
	want := 2.0 * 9 / 2.0
	assert.InDelta(t, want, inertia.Float(), want*0.02)
}

func TestMomentOfInertiaDegenerate(t *testing.T) {
	p, err := NewPolygon([]vmath.Vec{vmath.V2(0, 0), vmath.V2(1, 1), vmath.V2(2, 2)})
	require.NoError(t, err)
	_, err = p.MomentOfInertia(1)
	assert.ErrorIs(t, err, ErrDegenerate)
}
