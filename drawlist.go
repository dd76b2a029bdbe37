package gamearena

// drawList keeps drawables sorted by layer, lowest first, so painting
// front to back follows the painter's algorithm. Within a layer,
// arrival order is preserved: newer drawables paint over older ones.
type drawList struct {
	items []Drawable
}

// insert places d before the first drawable on a strictly higher
// layer.
func (l *drawList) insert(d Drawable) {
	layer := d.Layer()
	for i, existing := range l.items {
		if layer < existing.Layer() {
			l.items = append(l.items, nil)
			copy(l.items[i+1:], l.items[i:])
			l.items[i] = d
			return
		}
	}
	l.items = append(l.items, d)
}

// remove drops the first occurrence of d, compared by identity.
// Removing something absent is a no-op.
func (l *drawList) remove(d Drawable) {
	// slow ordered remove, so draw order stays consistent
	for i, existing := range l.items {
		if existing == d {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

func (l *drawList) clear() {
	l.items = nil
}

func (l *drawList) len() int {
	return len(l.items)
}
