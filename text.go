package gamearena

import (
	"github.com/gogpu/gg"

	"github.com/gamearena/gamearena/internal/typeface"
)

var _ Drawable = new(Text)

// Text is a single line of text. X and Y position the baseline of its
// first character; Size is the font size in points.
//
// Text renders with the bundled font. Callers who need another font
// can implement Drawable themselves.
type Text struct {
	Text   string
	Size   float64
	X      float64
	Y      float64
	Colour string

	layer int
}

// NewText creates a text item on layer 0.
func NewText(text string, size, x, y float64, colour string) *Text {
	return NewTextOnLayer(text, size, x, y, colour, 0)
}

// NewTextOnLayer creates a text item on the given layer. The layer is
// fixed for the lifetime of the item.
func NewTextOnLayer(text string, size, x, y float64, colour string, layer int) *Text {
	return &Text{
		Text:   text,
		Size:   size,
		X:      x,
		Y:      y,
		Colour: colour,
		layer:  layer,
	}
}

// Move shifts the text by (dx, dy).
func (self *Text) Move(dx, dy float64) {
	self.X += dx
	self.Y += dy
}

func (self *Text) Layer() int {
	return self.layer
}

func (self *Text) Draw(dc *gg.Context) {
	face := typeface.Face(self.Size)
	if face == nil {
		return
	}
	dc.SetFont(face)
	dc.SetFillBrush(gg.Solid(parseColour(self.Colour)))
	dc.DrawString(self.Text, self.X, self.Y)
}
