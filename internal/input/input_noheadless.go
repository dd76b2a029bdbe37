//go:build !headless

package input

import "github.com/hajimehoshi/ebiten/v2"

// letterKeys maps Letters indices to ebiten keys. The numeric key
// codes are not contiguous or stable across ebiten releases, so A
// through Z are listed explicitly.
var letterKeys = [26]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE,
	ebiten.KeyF, ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ,
	ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN, ebiten.KeyO,
	ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT,
	ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY,
	ebiten.KeyZ,
}

func poll(s *State) {
	s.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	s.Down = ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	s.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	s.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	s.Shift = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	s.Space = ebiten.IsKeyPressed(ebiten.KeySpace)
	s.Esc = ebiten.IsKeyPressed(ebiten.KeyEscape)
	s.Enter = ebiten.IsKeyPressed(ebiten.KeyEnter)

	for i, key := range letterKeys {
		s.Letters[i] = ebiten.IsKeyPressed(key)
	}

	s.MouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.MouseRight = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	s.MouseX, s.MouseY = ebiten.CursorPosition()
}
