// Package display abstracts the surface an arena renders to, so the
// same loop can drive a desktop window or a windowless test run.
package display

import (
	"github.com/pkg/errors"
)

// ErrTerminated is returned by Loop.Tick to end a run. Drivers treat
// it as a clean shutdown rather than a failure.
var ErrTerminated = errors.New("display: loop terminated")

// Screen receives one finished frame per paint pass.
type Screen interface {
	// Blit copies a full frame of RGBA pixels, four bytes per pixel in
	// row-major order, onto the output surface.
	Blit(pix []byte, width, height int)
}

// Loop is the driver-facing side of an arena.
type Loop interface {
	// Tick advances the loop once. Returning ErrTerminated stops the
	// driver; any other error aborts it.
	Tick() error
	// Paint composes the current frame onto screen.
	Paint(screen Screen)
	// Size reports the frame dimensions in pixels.
	Size() (width, height int)
}

// Driver owns the window, or its absence, and paces the loop.
type Driver interface {
	SetWindowTitle(title string)
	SetWindowSize(width, height int)
	SetTicksPerSecond(tps int)
	SetVsync(enabled bool)
	// Run drives loop until it terminates or the platform closes the
	// window. It must be called from the main goroutine.
	Run(loop Loop) error
}
