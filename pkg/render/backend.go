package render

import (
	"fmt"
)

// Backend names an interchangeable rendering implementation.
type Backend string

const (
	// Raster draws into in-memory images with a software rasteriser.
	Raster Backend = "raster"

	// Window draws into a desktop window through Ebitengine.
	Window Backend = "window"

	// Canvas draws onto an HTML canvas from WebAssembly.
	Canvas Backend = "canvas"
)

// Backends lists every known backend.
func Backends() []Backend {
	return []Backend{Raster, Window, Canvas}
}

// ParseBackend returns the Backend called name.
func ParseBackend(name string) (Backend, error) {
	for _, b := range Backends() {
		if string(b) == name {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown backend %q, want one of %v", name, Backends())
}
