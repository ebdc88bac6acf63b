// Package viewer draws styled collections. Every backend shares the same
// input, a Frame, so the geometry can be built and checked without any
// display present.
package viewer

import (
	"errors"

	"github.com/philipparndt/idfview/pkg/geometry"
	"github.com/philipparndt/idfview/pkg/scene"
)

// ErrUnavailable is returned when a backend cannot run in the current
// environment, for example a window without a display.
var ErrUnavailable = errors.New("rendering backend unavailable")

// Frame is everything a backend draws.
type Frame struct {
	Title       string
	Collections []scene.Collection
	Bounds      geometry.Cube
}

// Backend renders frames.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string
	// Available returns an error wrapping ErrUnavailable when Show cannot work here.
	Available() error
	// Show renders the frame. Interactive backends block until closed.
	Show(f Frame) error
}

// Live is implemented by interactive backends whose open view can take a
// new frame, used to reload on file changes.
type Live interface {
	// Update replaces the displayed frame. Safe to call from any goroutine.
	Update(f Frame)
	// Close ends a running Show.
	Close()
}
