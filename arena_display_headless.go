//go:build headless

package gamearena

import (
	"github.com/gamearena/gamearena/internal/display"
	"github.com/gamearena/gamearena/internal/display/headless"
)

func newDriver() display.Driver {
	return new(headless.Driver)
}
