package gamearena

import (
	"math"

	"github.com/gogpu/gg"
)

var _ Drawable = new(Rectangle)

// Rectangle is a filled, axis-aligned rectangle. X and Y are its top
// left corner. A non-zero Rotation, in degrees, turns it clockwise
// about its centre.
type Rectangle struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Colour   string
	Rotation float64

	layer int
}

// NewRectangle creates a rectangle on layer 0.
func NewRectangle(x, y, width, height float64, colour string) *Rectangle {
	return NewRectangleOnLayer(x, y, width, height, colour, 0)
}

// NewRectangleOnLayer creates a rectangle on the given layer. The
// layer is fixed for the lifetime of the rectangle.
func NewRectangleOnLayer(x, y, width, height float64, colour string, layer int) *Rectangle {
	return &Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Colour: colour,
		layer:  layer,
	}
}

// Move shifts the rectangle by (dx, dy).
func (self *Rectangle) Move(dx, dy float64) {
	self.X += dx
	self.Y += dy
}

func (self *Rectangle) Layer() int {
	return self.layer
}

func (self *Rectangle) Draw(dc *gg.Context) {
	dc.SetFillBrush(gg.Solid(parseColour(self.Colour)))
	if self.Rotation != 0 {
		dc.Push()
		dc.RotateAbout(self.Rotation*math.Pi/180, self.X+self.Width/2, self.Y+self.Height/2)
		dc.DrawRectangle(self.X, self.Y, self.Width, self.Height)
		dc.Fill()
		dc.Pop()
		return
	}
	dc.DrawRectangle(self.X, self.Y, self.Width, self.Height)
	dc.Fill()
}
