package tree

// Symmetric returns a perfectly-symmetric tree where all branches deviate at the same
// angle and shrink by the same scale.
//
// Children are shared between both sides of every junction, so the structure
// itself has only one node per layer.
func Symmetric(layers int, angle float64, scale float64) *Tree {
	if layers <= 0 {
		return nil
	}

	result := &Tree{
		Depth:      layers,
		LeftScale:  scale,
		RightScale: scale,
		LeftAngle:  angle,
		RightAngle: angle,
		Left:       nil,
		Right:      nil,
	}

	children := Symmetric(layers-1, angle, scale)
	result.Left = children
	result.Right = children

	return result
}
