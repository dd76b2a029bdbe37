package gamearena

import (
	"math"

	"github.com/gogpu/gg"
)

var _ Drawable = new(Line)

// Line is a straight stroke from (X1, Y1) to (X2, Y2). A non-zero
// ArrowSize adds a filled arrowhead of that length at the end point.
type Line struct {
	X1        float64
	Y1        float64
	X2        float64
	Y2        float64
	Width     float64
	Colour    string
	ArrowSize float64

	layer int
}

// NewLine creates a line on layer 0.
func NewLine(x1, y1, x2, y2, width float64, colour string) *Line {
	return NewLineOnLayer(x1, y1, x2, y2, width, colour, 0)
}

// NewLineOnLayer creates a line on the given layer. The layer is fixed
// for the lifetime of the line.
func NewLineOnLayer(x1, y1, x2, y2, width float64, colour string, layer int) *Line {
	return &Line{
		X1:     x1,
		Y1:     y1,
		X2:     x2,
		Y2:     y2,
		Width:  width,
		Colour: colour,
		layer:  layer,
	}
}

// Move shifts both end points by (dx, dy).
func (self *Line) Move(dx, dy float64) {
	self.X1 += dx
	self.Y1 += dy
	self.X2 += dx
	self.Y2 += dy
}

func (self *Line) Layer() int {
	return self.layer
}

func (self *Line) Draw(dc *gg.Context) {
	dc.SetStrokeBrush(gg.Solid(parseColour(self.Colour)))
	dc.SetLineWidth(self.Width)
	dc.DrawLine(self.X1, self.Y1, self.X2, self.Y2)
	dc.Stroke()

	if self.ArrowSize > 0 {
		self.drawArrowhead(dc)
	}
}

// drawArrowhead fills a triangle whose tip sits on the end point,
// pointing along the line.
func (self *Line) drawArrowhead(dc *gg.Context) {
	length := math.Hypot(self.X2-self.X1, self.Y2-self.Y1)
	if length == 0 {
		return
	}
	ux := (self.X2 - self.X1) / length
	uy := (self.Y2 - self.Y1) / length

	baseX := self.X2 - ux*self.ArrowSize
	baseY := self.Y2 - uy*self.ArrowSize
	half := self.ArrowSize / 2

	dc.MoveTo(self.X2, self.Y2)
	dc.LineTo(baseX-uy*half, baseY+ux*half)
	dc.LineTo(baseX+uy*half, baseY-ux*half)
	dc.ClosePath()
	dc.Fill()
}
