//go:build !headless

package gamearena

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gamearena/gamearena/internal/display/ebitendriver"
)

// Game exposes the arena as an ebiten.Game, for embedding into a host
// application built with WithOwnWindow(false). The arena ticks and
// paints whenever the host does. Exit propagates to the host as
// ebiten.Termination, closing it; Done closes once that exit has been
// observed.
func (a *Arena) Game() ebiten.Game {
	return ebitendriver.NewGame(arenaLoop{a})
}
