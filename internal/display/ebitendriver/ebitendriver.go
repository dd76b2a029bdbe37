// Package ebitendriver runs an arena loop in a desktop window using
// Ebitengine.
package ebitendriver

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/gamearena/gamearena/internal/display"
)

var _ display.Driver = new(Driver)

// Driver paces the loop with Ebitengine's game clock and presents
// frames in a native window.
type Driver struct{}

func (d *Driver) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (d *Driver) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (d *Driver) SetTicksPerSecond(tps int) {
	ebiten.SetTPS(tps)
}

func (d *Driver) SetVsync(enabled bool) {
	ebiten.SetVsyncEnabled(enabled)
}

func (d *Driver) Run(loop display.Loop) error {
	return ebiten.RunGame(&game{loop: loop})
}

// NewGame wraps loop as an ebiten.Game, for callers embedding a loop
// into their own Ebitengine application rather than using Run.
func NewGame(loop display.Loop) ebiten.Game {
	return &game{loop: loop}
}

// game adapts a display.Loop to the ebiten.Game interface.
type game struct {
	loop   display.Loop
	screen screenSurface
}

var _ ebiten.Game = new(game)

func (g *game) Update() error {
	if err := g.loop.Tick(); err != nil {
		if errors.Is(err, display.ErrTerminated) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.screen.target = screen
	g.loop.Paint(&g.screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.loop.Size()
}

// screenSurface uploads blitted frames through a reusable texture.
type screenSurface struct {
	target *ebiten.Image
	tex    *ebiten.Image
	width  int
	height int
}

var _ display.Screen = new(screenSurface)

func (s *screenSurface) Blit(pix []byte, width, height int) {
	if s.tex == nil || s.width != width || s.height != height {
		if s.tex != nil {
			s.tex.Deallocate()
		}
		s.tex = ebiten.NewImage(width, height)
		s.width, s.height = width, height
	}
	s.tex.WritePixels(pix)
	s.target.DrawImage(s.tex, nil)
}
