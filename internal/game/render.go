package game

import "github.com/vovakirdan/brickbreaker/internal/core"

// Entity colours.
const (
	BallColor   = core.ColorBlue
	BrickColor  = core.ColorRed
	PaddleColor = core.ColorBlack
)

// Render returns the frame as draw commands: the ball, each visible brick in
// row-major order, then the paddle. It does not modify the state.
func (s *State) Render() []core.DrawCommand {
	cmds := make([]core.DrawCommand, 0, s.BricksTotal()+2)

	cmds = append(cmds, core.DrawCommand{
		Shape:  core.ShapeCircle,
		Bounds: s.ball.Bounds(),
		Color:  BallColor,
	})

	for row := range s.bricks {
		for col := range s.bricks[row] {
			brick := s.bricks[row][col]
			if !brick.Visible {
				continue
			}
			cmds = append(cmds, core.DrawCommand{
				Shape:  core.ShapeRect,
				Bounds: brick.Bounds,
				Color:  BrickColor,
			})
		}
	}

	cmds = append(cmds, core.DrawCommand{
		Shape:  core.ShapeRect,
		Bounds: s.paddle.Bounds(),
		Color:  PaddleColor,
	})

	return cmds
}
