//go:build js && wasm

package canvas

import (
	"syscall/js"

	"github.com/willbeason/fractal-trees/pkg/render"
)

// AnimationFrames schedules callbacks with the browser's requestAnimationFrame.
type AnimationFrames struct {
	window  js.Value
	next    render.FrameID
	pending map[render.FrameID]pendingFrame
}

type pendingFrame struct {
	handle js.Value
	fn     js.Func
}

var _ render.Scheduler = (*AnimationFrames)(nil)

func NewAnimationFrames() *AnimationFrames {
	return &AnimationFrames{
		window:  js.Global(),
		pending: make(map[render.FrameID]pendingFrame),
	}
}

func (a *AnimationFrames) RequestFrame(cb func()) render.FrameID {
	a.next++
	id := a.next

	var fn js.Func
	fn = js.FuncOf(func(js.Value, []js.Value) any {
		delete(a.pending, id)
		fn.Release()
		cb()
		return nil
	})

	handle := a.window.Call("requestAnimationFrame", fn)
	a.pending[id] = pendingFrame{handle: handle, fn: fn}

	return id
}

func (a *AnimationFrames) CancelFrame(id render.FrameID) {
	p, ok := a.pending[id]
	if !ok {
		return
	}

	a.window.Call("cancelAnimationFrame", p.handle)
	p.fn.Release()
	delete(a.pending, id)
}
