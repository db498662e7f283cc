//go:build js && wasm

package canvas

import (
	"slices"
	"syscall/js"
	"testing"

	"github.com/willbeason/fractal-trees/pkg/render"
)

// page is an in-memory stand-in for a browser document and window.
type page struct {
	document js.Value
	window   js.Value

	ctxCalls map[string]int

	nextHandle int
	callbacks  map[int]js.Value
	cancelled  int

	funcs []js.Func
}

func newPage(t *testing.T) *page {
	t.Helper()

	p := &page{
		ctxCalls:  make(map[string]int),
		callbacks: make(map[int]js.Value),
	}
	t.Cleanup(func() {
		for _, fn := range p.funcs {
			fn.Release()
		}
	})

	ctx := newObject()
	for _, method := range []string{"fillRect", "beginPath", "moveTo", "lineTo", "stroke"} {
		ctx.Set(method, p.jsFunc(func([]js.Value) any {
			p.ctxCalls[method]++
			return nil
		}))
	}

	elements := map[string]js.Value{
		"canvas1":      p.canvas(ctx, 800, 600),
		"empty":        p.canvas(ctx, 0, 0),
		"not-a-canvas": newObject(),
	}
	elements["not-a-canvas"].Set("width", 800)
	elements["not-a-canvas"].Set("height", 600)

	p.document = newObject()
	p.document.Set("getElementById", p.jsFunc(func(args []js.Value) any {
		if el, ok := elements[args[0].String()]; ok {
			return el
		}
		return js.Null()
	}))

	p.window = newObject()
	p.window.Set("requestAnimationFrame", p.jsFunc(func(args []js.Value) any {
		p.nextHandle++
		p.callbacks[p.nextHandle] = args[0]
		return p.nextHandle
	}))
	p.window.Set("cancelAnimationFrame", p.jsFunc(func(args []js.Value) any {
		delete(p.callbacks, args[0].Int())
		p.cancelled++
		return nil
	}))

	return p
}

func newObject() js.Value {
	return js.Global().Get("Object").New()
}

func (p *page) jsFunc(fn func(args []js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any { return fn(args) })
	p.funcs = append(p.funcs, f)
	return f
}

func (p *page) canvas(ctx js.Value, width, height int) js.Value {
	el := newObject()
	el.Set("width", width)
	el.Set("height", height)
	el.Set("getContext", p.jsFunc(func(args []js.Value) any {
		if len(args) > 0 && args[0].String() == "2d" {
			return ctx
		}
		return js.Null()
	}))
	return el
}

func (p *page) resolver() Document {
	return Document{doc: p.document}
}

func (p *page) scheduler() *AnimationFrames {
	return &AnimationFrames{
		window:  p.window,
		pending: make(map[render.FrameID]pendingFrame),
	}
}

// advance runs the animation frame callbacks registered so far, oldest first.
func (p *page) advance() {
	due := p.callbacks
	p.callbacks = make(map[int]js.Value)

	handles := make([]int, 0, len(due))
	for h := range due {
		handles = append(handles, h)
	}
	slices.Sort(handles)

	for _, h := range handles {
		due[h].Invoke(0)
	}
}
