//go:build headless

package input

func poll(s *State) {
	*s = State{}
}
