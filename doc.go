// Package gamearena is a small 2D graphics arena for learning to
// program with games. It opens a window, shows shapes in layer order
// at a fixed frame rate, and answers simple keyboard and mouse
// questions. The interesting part, the game, is yours:
//
//	func main() {
//		arena := gamearena.New(800, 600)
//		ball := gamearena.NewBall(400, 300, 40, "RED")
//		arena.AddBall(ball)
//
//		go func() {
//			for !arena.EscPressed() {
//				ball.Move(2, 0)
//				arena.Pause()
//			}
//			arena.Exit()
//		}()
//
//		if err := arena.Run(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Run must be called from the main goroutine; game logic lives on a
// goroutine of its own, like the one above.
package gamearena
