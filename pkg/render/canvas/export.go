//go:build js && wasm

package canvas

import (
	"math"
	"syscall/js"

	"github.com/willbeason/fractal-trees/pkg/render"
)

// Names are the global JavaScript function names a Renderer is exported under.
type Names struct {
	Init, Start, Stop, Update string
}

// DefaultNames match the functions host pages already call.
var DefaultNames = Names{
	Init:   "init_fractal_trees",
	Start:  "start_fractal_trees",
	Stop:   "stop_fractal_trees",
	Update: "update_fractal_params",
}

// Export binds r's lifecycle to global functions on target and returns a
// function that removes them again.
//
// Missing or non-numeric arguments read as NaN and are clamped like any other
// out-of-range value.
func Export(target js.Value, r render.Renderer, names Names) (release func()) {
	funcs := map[string]js.Func{
		names.Init: js.FuncOf(func(_ js.Value, args []js.Value) any {
			id := ""
			if len(args) > 0 && args[0].Type() == js.TypeString {
				id = args[0].String()
			}
			r.Init(id)
			return nil
		}),
		names.Start: js.FuncOf(func(js.Value, []js.Value) any {
			r.Start()
			return nil
		}),
		names.Stop: js.FuncOf(func(js.Value, []js.Value) any {
			r.Stop()
			return nil
		}),
		names.Update: js.FuncOf(func(_ js.Value, args []js.Value) any {
			r.Update(number(args, 0), number(args, 1), number(args, 2))
			return nil
		}),
	}

	for name, fn := range funcs {
		target.Set(name, fn)
	}

	return func() {
		for name, fn := range funcs {
			target.Delete(name)
			fn.Release()
		}
	}
}

func number(args []js.Value, i int) float64 {
	if i >= len(args) {
		return math.NaN()
	}
	return js.Global().Call("Number", args[i]).Float()
}
