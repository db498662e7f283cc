// Package presentation prints run reports on the terminal.
package presentation

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/willbeason/fractal-trees/pkg/geometry"
	"github.com/willbeason/fractal-trees/pkg/render"
	"github.com/willbeason/fractal-trees/pkg/tree"
)

// Summary describes a finished render.
type Summary struct {
	Backend    render.Backend
	Surface    string
	Parameters tree.Parameters
	Segments   int
	Extent     geometry.Rect
	Frames     int
	Rotation   float64
	Files      []string
}

// Print writes s to out, coloured when out supports it.
func Print(out *termenv.Output, s Summary) {
	title := out.String("fractal-trees").Foreground(out.Color("#a78bfa")).Bold()
	label := func(l string) termenv.Style {
		return out.String(fmt.Sprintf("%-10s", l)).Foreground(out.Color("#818cf8"))
	}

	fmt.Fprintf(out, "%s %s on %q\n", title, s.Backend, s.Surface)
	fmt.Fprintf(out, "  %s %s\n", label("tree"), s.Parameters)
	fmt.Fprintf(out, "  %s %d\n", label("segments"), s.Segments)
	if !s.Extent.Empty() {
		fmt.Fprintf(out, "  %s %.1f x %.1f\n", label("extent"), s.Extent.Width(), s.Extent.Height())
	}
	fmt.Fprintf(out, "  %s %d (rotation %.4f rad)\n", label("frames"), s.Frames, s.Rotation)

	for _, f := range s.Files {
		fmt.Fprintf(out, "  %s %s\n", label("wrote"), out.String(f).Foreground(out.Color("#f472b6")))
	}
}
