package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/willbeason/fractal-trees/pkg/render"
)

const (
	angleStep  = 1.0
	lengthStep = 5.0
)

// Controls:
//
//	Space       start/stop
//	Up/Down     iterations
//	Left/Right  angle
//	[ and ]     length
//	Escape      quit
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggle()
	}

	var d delta
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		d.iterations++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		d.iterations--
	}
	if repeating(ebiten.KeyArrowRight) {
		d.angle += angleStep
	}
	if repeating(ebiten.KeyArrowLeft) {
		d.angle -= angleStep
	}
	if repeating(ebiten.KeyBracketRight) {
		d.length += lengthStep
	}
	if repeating(ebiten.KeyBracketLeft) {
		d.length -= lengthStep
	}

	g.apply(d)
}

// delta is a change to the tree parameters requested by one tick of input.
type delta struct {
	iterations    int
	angle, length float64
}

func (g *Game) apply(d delta) {
	if d == (delta{}) {
		return
	}

	p := g.host.Parameters()
	g.host.Update(float64(p.Iterations+d.iterations), p.Angle+d.angle, p.Length+d.length)
}

func (g *Game) toggle() {
	if g.host.State() == render.Running {
		g.host.Stop()
	} else {
		g.host.Start()
	}
}

// repeating reports a key press on the first tick and every few ticks after
// while the key is held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 15 && d%4 == 0)
}
