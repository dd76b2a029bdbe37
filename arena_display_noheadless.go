//go:build !headless

package gamearena

import (
	"github.com/gamearena/gamearena/internal/display"
	"github.com/gamearena/gamearena/internal/display/ebitendriver"
)

func newDriver() display.Driver {
	return new(ebitendriver.Driver)
}
