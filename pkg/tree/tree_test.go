package tree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/fractal-trees/pkg/geometry"
)

const tolerance = 1e-9

func TestGenerate_SegmentCount(t *testing.T) {
	for d := 1; d <= MaxIterations; d++ {
		p := Parameters{Iterations: d, Angle: 25, Length: 100}

		branches := Generate(Origin, Upright, p)

		assert.Len(t, branches, 1<<d-1, "depth %d", d)
		assert.Equal(t, SegmentCount(d), len(branches))
	}
}

func TestGenerate_ZeroDepthIsEmpty(t *testing.T) {
	branches := Generate(Origin, Upright, Parameters{Iterations: 0, Angle: 25, Length: 100})

	assert.Empty(t, branches)
	assert.Equal(t, 0, SegmentCount(0))
	assert.Nil(t, Symmetric(0, 1, ShrinkFactor))
}

func TestGenerate_Trunk(t *testing.T) {
	branches := Generate(Origin, Upright, Defaults())
	require.Len(t, branches, 31)

	trunk := branches[0]
	assert.Equal(t, Origin, trunk.Start)
	assert.InDelta(t, Origin.X, trunk.End.X, tolerance)
	assert.InDelta(t, Origin.Y+100, trunk.End.Y, tolerance)
	assert.Equal(t, 5, trunk.Depth)
}

func TestGenerate_PreOrderLeftFirst(t *testing.T) {
	p := Parameters{Iterations: 2, Angle: 30, Length: 100}

	branches := Generate(geometry.XY{}, Upright, p)
	require.Len(t, branches, 3)

	root, left, right := branches[0], branches[1], branches[2]
	assert.Equal(t, root.End, left.Start)
	assert.Equal(t, root.End, right.Start)

	// Turning counter-clockwise from straight up leans left.
	assert.Less(t, left.End.X, root.End.X)
	assert.Greater(t, right.End.X, root.End.X)

	wantLeft := root.End.Add(geometry.Polar(100*ShrinkFactor, Upright+geometry.Radians(30)))
	assert.InDelta(t, wantLeft.X, left.End.X, tolerance)
	assert.InDelta(t, wantLeft.Y, left.End.Y, tolerance)

	wantRight := root.End.Add(geometry.Polar(100*ShrinkFactor, Upright-geometry.Radians(30)))
	assert.InDelta(t, wantRight.X, right.End.X, tolerance)
	assert.InDelta(t, wantRight.Y, right.End.Y, tolerance)

	assert.Equal(t, []int{2, 1, 1}, []int{root.Depth, left.Depth, right.Depth})
}

func TestGenerate_Deterministic(t *testing.T) {
	p := Parameters{Iterations: 8, Angle: 17.5, Length: 123}

	first := Generate(Origin, Upright, p)
	second := Generate(Origin, Upright, p)

	assert.Equal(t, first, second)
}

func TestGenerate_LengthsShrink(t *testing.T) {
	p := Parameters{Iterations: 6, Angle: 40, Length: 150}

	for _, b := range Generate(Origin, Upright, p) {
		want := p.Length * math.Pow(ShrinkFactor, float64(p.Iterations-b.Depth))
		assert.InDelta(t, want, b.End.Sub(b.Start).Length(), 1e-6)
	}
}

func TestChildren(t *testing.T) {
	branches := Generate(Origin, Upright, Parameters{Iterations: 4, Angle: 20, Length: 80})
	require.Len(t, branches, 15)

	left, right, ok := Children(branches, 0)
	require.True(t, ok)
	assert.Equal(t, 1, left)
	assert.Equal(t, 8, right)

	for i, b := range branches {
		l, r, ok := Children(branches, i)
		if b.Depth == 1 {
			assert.False(t, ok, "leaf %d has children", i)
			continue
		}
		require.True(t, ok, "branch %d", i)
		assert.Equal(t, b.End, branches[l].Start)
		assert.Equal(t, b.End, branches[r].Start)
		assert.Equal(t, b.Depth-1, branches[l].Depth)
		assert.Equal(t, b.Depth-1, branches[r].Depth)
	}

	_, _, ok = Children(branches, -1)
	assert.False(t, ok)
	_, _, ok = Children(branches, len(branches))
	assert.False(t, ok)
}

func TestSymmetric_SharesChildren(t *testing.T) {
	fractal := Symmetric(3, 0.5, ShrinkFactor)

	require.NotNil(t, fractal)
	assert.Same(t, fractal.Left, fractal.Right)
	assert.Equal(t, 3, fractal.Depth)
	assert.Equal(t, 2, fractal.Left.Depth)
	assert.Equal(t, 7, fractal.Count())
}

func TestExtent(t *testing.T) {
	branches := Generate(Origin, Upright, Parameters{Iterations: 1, Angle: 25, Length: 100})

	r := Extent(branches)

	assert.False(t, r.Empty())
	assert.InDelta(t, 0, r.Width(), tolerance)
	assert.InDelta(t, 100, r.Height(), tolerance)
	assert.True(t, Extent(nil).Empty())
}
