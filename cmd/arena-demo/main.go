package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/gamearena/gamearena"
)

const (
	screenWidth  = 800
	screenHeight = 600
	ballCount    = 8
)

var ballColours = []string{"RED", "YELLOW", "CYAN", "GREEN", "ORANGE", "PINK", "MAGENTA", "WHITE"}

// main opens a small breakout-style arena: balls bounce around the
// court, the arrow keys (or the mouse with the left button held) move
// the paddle, B serves another ball, and Esc quits.
func main() {
	arena := gamearena.New(screenWidth, screenHeight,
		gamearena.WithTitle("Arena Demo"),
		gamearena.WithBackgroundColour("#102040"),
	)

	if path, err := paintBackdrop(); err != nil {
		log.Printf("no backdrop: %v", err)
	} else {
		arena.SetBackgroundImage(path)
	}

	go play(arena)

	if err := arena.Run(); err != nil {
		log.Fatal(err)
	}
}

type mover struct {
	ball   *gamearena.Ball
	vx, vy float64
}

func play(arena *gamearena.Arena) {
	centre := gamearena.NewLineOnLayer(screenWidth/2, 0, screenWidth/2, screenHeight, 2, "DARKGREY", 0)
	arena.AddLine(centre)

	marker := gamearena.NewRectangleOnLayer(screenWidth/2-12, screenHeight/2-12, 24, 24, "GREY", 0)
	arena.AddRectangle(marker)

	serveArrow := gamearena.NewLineOnLayer(40, 80, 110, 80, 3, "LIGHTGREY", 3)
	serveArrow.ArrowSize = 14
	arena.AddLine(serveArrow)

	paddle := gamearena.NewRectangleOnLayer(screenWidth/2-60, screenHeight-40, 120, 16, "WHITE", 2)
	arena.AddRectangle(paddle)

	score := gamearena.NewTextOnLayer("bounces: 0", 22, 40, 60, "YELLOW", 3)
	arena.AddText(score)

	var movers []*mover
	for i := 0; i < ballCount; i++ {
		movers = append(movers, serve(arena, i))
	}

	bounces := 0
	serving := false
	for !arena.EscPressed() {
		for _, m := range movers {
			m.ball.Move(m.vx, m.vy)
			r := m.ball.Diameter / 2
			if m.ball.X < r || m.ball.X > screenWidth-r {
				m.vx = -m.vx
				bounces++
			}
			if m.ball.Y < r || m.ball.Y > screenHeight-r {
				m.vy = -m.vy
				bounces++
			}
			if hitsPaddle(m.ball, paddle) && m.vy > 0 {
				m.vy = -m.vy
				bounces++
			}
		}

		if arena.LeftPressed() {
			paddle.Move(-6, 0)
		}
		if arena.RightPressed() {
			paddle.Move(6, 0)
		}
		if arena.LeftMousePressed() {
			paddle.X = float64(arena.GetMousePositionX()) - paddle.Width/2
		}
		if paddle.X < 0 {
			paddle.X = 0
		}
		if paddle.X > screenWidth-paddle.Width {
			paddle.X = screenWidth - paddle.Width
		}

		// Serve one extra ball per press of B.
		if arena.LetterPressed('b') {
			if !serving {
				movers = append(movers, serve(arena, len(movers)))
				serving = true
			}
		} else {
			serving = false
		}

		marker.Rotation += 1.5
		score.Text = fmt.Sprintf("bounces: %d", bounces)

		arena.Pause()
	}
	arena.Exit()
}

func serve(arena *gamearena.Arena, n int) *mover {
	colour := ballColours[n%len(ballColours)]
	b := gamearena.NewBallOnLayer(
		60+rand.Float64()*(screenWidth-120),
		60+rand.Float64()*(screenHeight/2),
		18+rand.Float64()*22,
		colour,
		1,
	)
	arena.AddBall(b)
	return &mover{
		ball: b,
		vx:   3 + rand.Float64()*3,
		vy:   2 + rand.Float64()*3,
	}
}

func hitsPaddle(b *gamearena.Ball, p *gamearena.Rectangle) bool {
	r := b.Diameter / 2
	return b.Y+r >= p.Y && b.Y-r <= p.Y+p.Height &&
		b.X+r >= p.X && b.X-r <= p.X+p.Width
}

// paintBackdrop renders the court to a temporary PNG so the demo can
// show SetBackgroundImage without shipping an image file.
func paintBackdrop() (string, error) {
	dc := gg.NewContext(screenWidth, screenHeight)
	dc.ClearWithColor(gg.Hex("#102040"))

	dc.SetFillBrush(gg.Solid(gg.Hex("#16305C")))
	for x := 0; x < screenWidth; x += 80 {
		dc.DrawRectangle(float64(x), 0, 40, screenHeight)
		dc.Fill()
	}

	dc.SetStrokeBrush(gg.Solid(gg.Hex("#4060A0")))
	dc.SetLineWidth(8)
	dc.DrawRectangle(4, 4, screenWidth-8, screenHeight-8)
	dc.Stroke()

	path := filepath.Join(os.TempDir(), "arena-demo-backdrop.png")
	if err := dc.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}
