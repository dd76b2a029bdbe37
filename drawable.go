package gamearena

import "github.com/gogpu/gg"

// Drawable is anything an arena can show. Ball, Rectangle, Line and
// Text implement it; user types can too.
type Drawable interface {
	// Layer reports the drawing layer. Lower layers paint first, so
	// higher layers cover them where they overlap.
	Layer() int

	// Draw renders the drawable into dc. Draw is called with the
	// arena lock held; implementations must not call back into the
	// arena.
	Draw(dc *gg.Context)
}
