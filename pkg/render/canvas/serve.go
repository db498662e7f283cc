//go:build js && wasm

package canvas

import (
	"sync"
	"syscall/js"

	"github.com/willbeason/fractal-trees/pkg/render"
)

// DisposeName is the global the page calls to tear the renderer down.
const DisposeName = "dispose_fractal_trees"

// Closer is a Renderer that can release its surface.
type Closer interface {
	render.Renderer
	Close()
}

// Serve exports r under names and blocks until the page calls the dispose
// function. r is then closed and every global is removed.
func Serve(target js.Value, r Closer, names Names, dispose string) {
	done := make(chan struct{})
	release := Export(target, r, names)

	var once sync.Once
	fn := js.FuncOf(func(js.Value, []js.Value) any {
		// Runs on the same goroutine as the other exported calls.
		once.Do(func() {
			r.Close()
			release()
			target.Delete(dispose)
			close(done)
		})
		return nil
	})
	target.Set(dispose, fn)

	<-done
	fn.Release()
}
