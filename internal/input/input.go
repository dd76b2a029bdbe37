package input

// State is the input snapshot an arena takes once per tick. The arena
// copies these values into plain fields that user code reads without
// locking, so everything here is a value type.
type State struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Shift bool
	Space bool
	Esc   bool
	Enter bool

	// Letters holds one flag per letter key, A at index 0 through Z
	// at index 25.
	Letters [26]bool

	MouseLeft  bool
	MouseRight bool
	MouseX     int
	MouseY     int
}

// Letter reports whether the letter key for r is held. Either case is
// accepted; runes outside A-Z report false.
func (s *State) Letter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return s.Letters[r-'a']
	case r >= 'A' && r <= 'Z':
		return s.Letters[r-'A']
	}
	return false
}

// Poll overwrites s with the current device state.
//
// For headless builds there are no devices and s is zeroed.
func Poll(s *State) {
	poll(s)
}
