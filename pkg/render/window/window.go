// Package window is the desktop rendering backend, built on Ebitengine.
//
// A Game is at once the ebiten.Game driving the frame loop, the Scheduler
// whose callbacks run once per tick, and the Resolver for its single surface.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/willbeason/fractal-trees/pkg/render"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTPS    = 60
)

// Config describes the window.
type Config struct {
	// SurfaceID is the id Init must be called with.
	SurfaceID string

	Width, Height int
	Title         string

	// TPS is the number of frames per second.
	TPS int

	// Controls enables keyboard control of the tree.
	Controls bool

	// HUD prints the parameters and state over the tree.
	HUD bool
}

// Game runs a render.Host in a window.
type Game struct {
	cfg  Config
	host *render.Host

	surface surface

	next     render.FrameID
	pendID   render.FrameID
	callback func()

	quit bool
}

var (
	_ ebiten.Game      = (*Game)(nil)
	_ render.Scheduler = (*Game)(nil)
	_ render.Resolver  = (*Game)(nil)
)

// New returns a Game whose Host draws on the window. The Host is not
// initialized; call Host().Init(cfg.SurfaceID).
func New(cfg Config, opts ...render.Option) *Game {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = DefaultWidth, DefaultHeight
	}
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultTPS
	}

	g := &Game{cfg: cfg}
	g.surface.width, g.surface.height = cfg.Width, cfg.Height
	g.host = render.NewHost(g, g, opts...)

	return g
}

// Host is the renderer bound to this window.
func (g *Game) Host() *render.Host {
	return g.host
}

func (g *Game) Resolve(id string) (render.Surface, error) {
	if id != g.cfg.SurfaceID {
		return nil, fmt.Errorf("window has surface %q, not %q: %w", g.cfg.SurfaceID, id, render.ErrSurfaceNotFound)
	}
	g.surface.released = false
	return &g.surface, nil
}

func (g *Game) RequestFrame(cb func()) render.FrameID {
	g.next++
	g.pendID, g.callback = g.next, cb
	return g.next
}

func (g *Game) CancelFrame(id render.FrameID) {
	if id == g.pendID {
		g.callback = nil
	}
}

// Tick presents one frame of the animation loop.
func (g *Game) Tick() {
	cb := g.callback
	g.callback = nil
	if cb != nil {
		cb()
	}
}

func (g *Game) Update() error {
	if g.cfg.Controls {
		g.handleInput()
	}
	if g.quit {
		return ebiten.Termination
	}

	g.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	f, ok := g.surface.frame()
	if !ok {
		screen.Fill(black)
		return
	}

	screen.Fill(f.Stroke.Background)
	for _, s := range f.Segments {
		vector.StrokeLine(screen,
			float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1),
			float32(s.Width), f.Stroke.Color, true)

		if f.Stroke.RoundCaps {
			r := float32(s.Width * 0.5)
			vector.DrawFilledCircle(screen, float32(s.X0), float32(s.Y0), r, f.Stroke.Color, true)
			vector.DrawFilledCircle(screen, float32(s.X1), float32(s.Y1), r, f.Stroke.Color, true)
		}
	}

	if g.cfg.HUD {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\n%s  rotation=%.3f",
			f.Parameters, g.host.State(), f.Rotation))
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens the window and blocks until it is closed. The Host is closed on return.
func (g *Game) Run() error {
	defer g.host.Close()

	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetTPS(g.cfg.TPS)

	// Returning ebiten.Termination from Update ends RunGame without an error.
	return ebiten.RunGame(g)
}

// surface keeps the latest frame until Ebitengine asks the Game to draw.
type surface struct {
	width, height int

	last     render.Frame
	hasFrame bool
	released bool
}

func (s *surface) Size() (int, int) {
	return s.width, s.height
}

func (s *surface) Draw(f render.Frame) {
	if s.released {
		return
	}
	s.last, s.hasFrame = f, true
}

func (s *surface) Release() {
	s.released = true
	s.last, s.hasFrame = render.Frame{}, false
}

func (s *surface) frame() (render.Frame, bool) {
	return s.last, s.hasFrame
}

// black is drawn before the Host is initialized.
var black = color.RGBA{A: 0xff}
