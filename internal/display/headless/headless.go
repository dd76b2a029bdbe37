// Package headless drives an arena loop on a plain ticker with no
// window, for tests and windowless environments.
package headless

import (
	"time"

	"github.com/pkg/errors"

	"github.com/gamearena/gamearena/internal/display"
)

var _ display.Driver = new(Driver)

// Driver paces the loop with a wall-clock ticker. The zero value runs
// at 100 ticks per second.
type Driver struct {
	tps int
}

func (d *Driver) SetWindowTitle(title string) {
	// n/a without a window
}

func (d *Driver) SetWindowSize(width, height int) {
	// n/a without a window
}

func (d *Driver) SetTicksPerSecond(tps int) {
	d.tps = tps
}

func (d *Driver) SetVsync(enabled bool) {
	// n/a without a window
}

func (d *Driver) Run(loop display.Loop) error {
	tps := d.tps
	if tps <= 0 {
		tps = 100
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()
	for range ticker.C {
		if err := loop.Tick(); err != nil {
			if errors.Is(err, display.ErrTerminated) {
				return nil
			}
			return err
		}
		// Paint every tick so the frame buffer stays current for
		// anything inspecting it, even though there is no window.
		loop.Paint(nopScreen{})
	}
	return nil
}

// nopScreen discards frames; headless runs have nowhere to show them.
type nopScreen struct{}

var _ display.Screen = nopScreen{}

func (nopScreen) Blit(pix []byte, width, height int) {
}
