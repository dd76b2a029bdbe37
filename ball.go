package gamearena

import (
	"github.com/gogpu/gg"
)

var _ Drawable = new(Ball)

// Ball is a filled circle. X and Y are its centre in pixels, measured
// from the top left of the arena.
type Ball struct {
	X        float64
	Y        float64
	Diameter float64
	Colour   string

	layer int
}

// NewBall creates a ball on layer 0.
func NewBall(x, y, diameter float64, colour string) *Ball {
	return NewBallOnLayer(x, y, diameter, colour, 0)
}

// NewBallOnLayer creates a ball on the given layer. The layer is fixed
// for the lifetime of the ball.
func NewBallOnLayer(x, y, diameter float64, colour string, layer int) *Ball {
	return &Ball{
		X:        x,
		Y:        y,
		Diameter: diameter,
		Colour:   colour,
		layer:    layer,
	}
}

// Move shifts the ball by (dx, dy).
func (self *Ball) Move(dx, dy float64) {
	self.X += dx
	self.Y += dy
}

func (self *Ball) Layer() int {
	return self.layer
}

func (self *Ball) Draw(dc *gg.Context) {
	dc.SetFillBrush(gg.Solid(parseColour(self.Colour)))
	dc.DrawCircle(self.X, self.Y, self.Diameter/2)
	dc.Fill()
}
