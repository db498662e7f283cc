package render

// State is where a Host is in its lifecycle.
type State int

const (
	Uninitialized State = iota
	Stopped
	Running
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	}
	return "unknown"
}

// Animation is the continuous rotation of the whole tree.
type Animation struct {
	Running bool

	// Rotation is the accumulated angle in radians, counter-clockwise.
	Rotation float64
}
