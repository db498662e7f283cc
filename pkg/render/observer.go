package render

import (
	"github.com/willbeason/fractal-trees/pkg/tree"
)

// Observer is notified of Host activity. Implementations must not call back
// into the Host.
type Observer interface {
	InitFailed(surfaceID string, err error)
	Regenerated(p tree.Parameters, segments int)
	FrameDrawn(f Frame)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) InitFailed(string, error)        {}
func (NopObserver) Regenerated(tree.Parameters, int) {}
func (NopObserver) FrameDrawn(Frame)                 {}

var _ Observer = NopObserver{}
