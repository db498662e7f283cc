//go:build js && wasm

// Command wasm exposes a fractal tree renderer to the page it is loaded in.
package main

import (
	"log/slog"
	"syscall/js"

	"github.com/willbeason/fractal-trees/internal/logging"
	"github.com/willbeason/fractal-trees/pkg/render"
	"github.com/willbeason/fractal-trees/pkg/render/canvas"
)

func main() {
	logger := logging.New(slog.LevelInfo).With("backend", string(render.Canvas))

	host := render.NewHost(canvas.NewDocument(), canvas.NewAnimationFrames(), render.WithLogger(logger))

	logger.Info("renderer exported", "init", canvas.DefaultNames.Init, "dispose", canvas.DisposeName)
	canvas.Serve(js.Global(), host, canvas.DefaultNames, canvas.DisposeName)
	logger.Info("renderer disposed")
}
