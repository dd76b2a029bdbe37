package gamearena

// Input methods read a snapshot refreshed once per render tick,
// without locking: a reader may see state at most one tick old, which
// is fine for a polling game loop.

// UpPressed reports whether the up arrow key is held.
func (a *Arena) UpPressed() bool {
	return a.in.Up
}

// DownPressed reports whether the down arrow key is held.
func (a *Arena) DownPressed() bool {
	return a.in.Down
}

// LeftPressed reports whether the left arrow key is held.
func (a *Arena) LeftPressed() bool {
	return a.in.Left
}

// RightPressed reports whether the right arrow key is held.
func (a *Arena) RightPressed() bool {
	return a.in.Right
}

// ShiftPressed reports whether either shift key is held.
func (a *Arena) ShiftPressed() bool {
	return a.in.Shift
}

// SpacePressed reports whether the space bar is held.
func (a *Arena) SpacePressed() bool {
	return a.in.Space
}

// EscPressed reports whether the escape key is held.
func (a *Arena) EscPressed() bool {
	return a.in.Esc
}

// EnterPressed reports whether the enter key is held.
func (a *Arena) EnterPressed() bool {
	return a.in.Enter
}

// LetterPressed reports whether the letter key for letter is held.
// Either case works: LetterPressed('a') and LetterPressed('A') ask the
// same question.
func (a *Arena) LetterPressed(letter rune) bool {
	return a.in.Letter(letter)
}

// LeftMousePressed reports whether the left mouse button is held.
func (a *Arena) LeftMousePressed() bool {
	return a.in.MouseLeft
}

// RightMousePressed reports whether the right mouse button is held.
func (a *Arena) RightMousePressed() bool {
	return a.in.MouseRight
}

// GetMousePositionX returns the last seen X coordinate of the mouse
// pointer, in arena pixels.
func (a *Arena) GetMousePositionX() int {
	return a.in.MouseX
}

// GetMousePositionY returns the last seen Y coordinate of the mouse
// pointer, in arena pixels.
func (a *Arena) GetMousePositionY() int {
	return a.in.MouseY
}
