package gamearena

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func newTestCanvas(width, height int) (*gg.Pixmap, *gg.Context) {
	pm := gg.NewPixmap(width, height)
	dc := gg.NewContext(width, height, gg.WithPixmap(pm))
	dc.ClearWithColor(gg.White)
	return pm, dc
}

// sameColour compares with a small tolerance so anti-aliased interiors
// still count as a match.
func sameColour(a, b gg.RGBA) bool {
	const eps = 0.02
	return math.Abs(a.R-b.R) < eps &&
		math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps &&
		math.Abs(a.A-b.A) < eps
}

func TestBallMove(t *testing.T) {
	ball := NewBall(10, 20, 8, "RED")
	ball.Move(5, -3)
	if ball.X != 15 || ball.Y != 17 {
		t.Errorf("ball at (%v, %v), want (15, 17)", ball.X, ball.Y)
	}
}

func TestLineMoveShiftsBothEnds(t *testing.T) {
	line := NewLine(0, 0, 10, 10, 1, "WHITE")
	line.Move(3, 4)
	if line.X1 != 3 || line.Y1 != 4 || line.X2 != 13 || line.Y2 != 14 {
		t.Errorf("line at (%v, %v)-(%v, %v), want (3, 4)-(13, 14)",
			line.X1, line.Y1, line.X2, line.Y2)
	}
}

func TestConstructorsSetLayer(t *testing.T) {
	shapes := []Drawable{
		NewBall(0, 0, 1, "RED"),
		NewRectangle(0, 0, 1, 1, "RED"),
		NewLine(0, 0, 1, 1, 1, "RED"),
		NewText("hi", 12, 0, 0, "RED"),
	}
	for i, d := range shapes {
		if d.Layer() != 0 {
			t.Errorf("shape %d: layer %d, want 0", i, d.Layer())
		}
	}

	layered := []Drawable{
		NewBallOnLayer(0, 0, 1, "RED", 4),
		NewRectangleOnLayer(0, 0, 1, 1, "RED", 4),
		NewLineOnLayer(0, 0, 1, 1, 1, "RED", 4),
		NewTextOnLayer("hi", 12, 0, 0, "RED", 4),
	}
	for i, d := range layered {
		if d.Layer() != 4 {
			t.Errorf("layered shape %d: layer %d, want 4", i, d.Layer())
		}
	}
}

func TestBallDrawFillsCircle(t *testing.T) {
	pm, dc := newTestCanvas(64, 64)
	NewBall(32, 32, 20, "RED").Draw(dc)

	if got := pm.GetPixel(32, 32); !sameColour(got, gg.Red) {
		t.Errorf("centre pixel is %v, want red", got)
	}
	if got := pm.GetPixel(5, 5); !sameColour(got, gg.White) {
		t.Errorf("corner pixel is %v, want untouched white", got)
	}
}

func TestRectangleDrawRotated(t *testing.T) {
	pm, dc := newTestCanvas(64, 64)
	rect := NewRectangle(12, 27, 40, 10, "BLUE")
	rect.Rotation = 90
	rect.Draw(dc)

	// Turned about its centre (32, 32) the rectangle now spans
	// x in [27, 37] and y in [12, 52].
	if got := pm.GetPixel(32, 48); !sameColour(got, gg.Blue) {
		t.Errorf("pixel inside the rotated rectangle is %v, want blue", got)
	}
	if got := pm.GetPixel(14, 32); !sameColour(got, gg.White) {
		t.Errorf("pixel left of the rotated rectangle is %v, want white", got)
	}
}

func TestRectangleRotationDoesNotLeakIntoLaterDraws(t *testing.T) {
	pm, dc := newTestCanvas(64, 64)
	spinner := NewRectangle(24, 24, 16, 16, "BLUE")
	spinner.Rotation = 45
	spinner.Draw(dc)
	NewRectangle(2, 2, 6, 6, "RED").Draw(dc)

	if got := pm.GetPixel(5, 5); !sameColour(got, gg.Red) {
		t.Errorf("axis-aligned rectangle drawn after a rotated one is %v at (5, 5), want red", got)
	}
}

func TestLineDrawWithArrowhead(t *testing.T) {
	pm, dc := newTestCanvas(64, 64)
	line := NewLine(8, 32, 56, 32, 2, "BLACK")
	line.ArrowSize = 12
	line.Draw(dc)

	if got := pm.GetPixel(32, 32); !sameColour(got, gg.Black) {
		t.Errorf("pixel on the line is %v, want black", got)
	}
	// A point just behind the tip, on the line axis, is inside the
	// arrowhead triangle.
	if got := pm.GetPixel(52, 32); !sameColour(got, gg.Black) {
		t.Errorf("pixel inside the arrowhead is %v, want black", got)
	}
}

func TestZeroLengthArrowLineDrawsNothing(t *testing.T) {
	pm, dc := newTestCanvas(64, 64)
	line := NewLine(32, 32, 32, 32, 2, "BLACK")
	line.ArrowSize = 12
	line.Draw(dc)

	if got := pm.GetPixel(30, 30); !sameColour(got, gg.White) {
		t.Errorf("zero length line painted %v near its point", got)
	}
}

func TestTextDrawPaintsGlyphs(t *testing.T) {
	pm, dc := newTestCanvas(64, 64)
	NewText("X", 24, 10, 40, "BLACK").Draw(dc)

	inked := false
	for y := 16; y < 48 && !inked; y++ {
		for x := 8; x < 40; x++ {
			if pm.GetPixel(x, y).R < 0.5 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("drawing text left the canvas blank")
	}
}
