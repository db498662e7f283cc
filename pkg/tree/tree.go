package tree

import (
	"github.com/willbeason/fractal-trees/pkg/geometry"
	"math"
)

const (
	// ShrinkFactor is the length of each child branch relative to its parent.
	ShrinkFactor = 0.67
)

var (
	// Origin is where the trunk starts, in surface-centred y-up coordinates.
	// It sits in the bottom-centre of the fixed 800x600 viewport.
	Origin = geometry.XY{X: 0.0, Y: -150.0}

	// Upright is the trunk's orientation: straight up.
	Upright = math.Pi / 2.0
)

// A Branch is one emitted line segment of a tree.
type Branch struct {
	Start, End geometry.XY

	// Depth is the recursion depth remaining at this branch.
	// The trunk has the tree's full depth and leaves have depth 1.
	Depth int
}

// A Tree is a branch together with the junction at its tip.
//
// The recursive structure mimics the rendered structure.
type Tree struct {
	// Depth is the number of branch generations from this branch to the leaves,
	// counting this branch.
	Depth int

	// LeftScale and RightScale are the lengths of the Left and Right branches
	// relative to this branch.
	LeftScale, RightScale float64

	// LeftAngle is the angle to which the Left branch is turned from this branch.
	// Measured in radians counter-clockwise from the current branch's direction.
	LeftAngle float64

	// RightAngle is the same as above, but for the Right branch.
	// Measured in radians clockwise.
	RightAngle float64

	// Left and Right are the Tree's branches.
	// If nil, the tree does not continue.
	Left, Right *Tree
}

// Generate returns every branch of the tree described by p, grown from origin
// in the given orientation (radians counter-clockwise from the positive x-axis).
//
// Branches are emitted depth-first in pre-order, each left child before its
// right sibling. The result is a pure function of the arguments.
func Generate(origin geometry.XY, orientation float64, p Parameters) []Branch {
	fractal := Symmetric(p.Iterations, geometry.Radians(p.Angle), ShrinkFactor)
	return fractal.Branches(origin, orientation, p.Length)
}

// Branches lays the tree out as line segments, with the first branch starting at
// start and pointing along orientation.
func (tree *Tree) Branches(start geometry.XY, orientation, length float64) []Branch {
	branches := make([]Branch, 0, tree.Count())
	return tree.appendBranches(branches, start, orientation, length)
}

func (tree *Tree) appendBranches(dst []Branch, start geometry.XY, orientation, length float64) []Branch {
	if tree == nil {
		return dst
	}

	end := start.Add(geometry.Polar(length, orientation))
	dst = append(dst, Branch{Start: start, End: end, Depth: tree.Depth})

	dst = tree.Left.appendBranches(dst, end, orientation+tree.LeftAngle, length*tree.LeftScale)
	dst = tree.Right.appendBranches(dst, end, orientation-tree.RightAngle, length*tree.RightScale)

	return dst
}

// Count is the number of branches Branches emits.
func (tree *Tree) Count() int {
	if tree == nil {
		return 0
	}
	return 1 + tree.Left.Count() + tree.Right.Count()
}

// SegmentCount is the number of branches in a full tree of the given depth, 2^depth - 1.
func SegmentCount(depth int) int {
	if depth <= 0 {
		return 0
	}
	return 1<<depth - 1
}

// Children returns the indices of the left and right children of branches[i],
// assuming branches is a full tree in the order Generate emits.
// ok is false for leaves and out-of-range indices.
func Children(branches []Branch, i int) (left, right int, ok bool) {
	if i < 0 || i >= len(branches) || branches[i].Depth <= 1 {
		return 0, 0, false
	}

	left = i + 1
	right = left + SegmentCount(branches[i].Depth-1)
	if right >= len(branches) {
		return 0, 0, false
	}

	return left, right, true
}

// Extent is the bounding box of every branch endpoint.
func Extent(branches []Branch) geometry.Rect {
	var r geometry.Rect
	for _, b := range branches {
		r = r.Extend(b.Start).Extend(b.End)
	}
	return r
}
