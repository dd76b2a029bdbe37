//go:build headless

package input

import (
	"testing"
)

// Headless builds have no devices, so a poll must leave nothing stale.
func TestPollZeroesTheState(t *testing.T) {
	s := State{
		Up:     true,
		Shift:  true,
		MouseX: 40,
		MouseY: 30,
	}
	s.Letters['k'-'a'] = true

	Poll(&s)

	if s != (State{}) {
		t.Errorf("poll left stale input behind: %+v", s)
	}
}
