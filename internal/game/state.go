// Package game implements the brick breaker simulation: a ball, a paddle and
// a fixed grid of bricks advanced one fixed tick at a time.
//
// The package has no knowledge of windows, terminals or key codes. A driver
// calls Step once per tick, SetMoveLeft/SetMoveRight on key events and Render
// once per frame, all from the same goroutine.
package game

import (
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Outcome is the terminal result of a round.
type Outcome int

const (
	OutcomeNone Outcome = iota // Round in progress
	OutcomeWon                 // Every brick destroyed
	OutcomeLost                // Ball reached the bottom edge
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended.
func (o Outcome) Terminal() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// Ball is the ball state. X and Y are the top-left of its bounding box.
type Ball struct {
	X, Y   int
	VX, VY int
	Size   int
}

// Bounds returns the ball's bounding box.
func (b Ball) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// Paddle is the player's paddle. Y never changes after construction.
type Paddle struct {
	X, Y          int
	Width, Height int
}

// Bounds returns the paddle's bounding box.
func (p Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Brick is one cell of the grid. Once hidden it stays hidden until Reset.
type Brick struct {
	Bounds  core.Rect
	Visible bool
}

// State owns all mutable simulation state.
type State struct {
	cfg config.GameConfig

	ball   Ball
	paddle Paddle
	bricks [][]Brick // [row][col], allocated once

	moveLeft  bool
	moveRight bool

	outcome Outcome
	tick    uint64
}

// New creates a game in its starting position.
// cfg is expected to have passed config.Validate.
func New(cfg config.GameConfig) *State {
	s := &State{cfg: cfg}
	s.bricks = make([][]Brick, cfg.Bricks.Rows)
	for row := range s.bricks {
		s.bricks[row] = make([]Brick, cfg.Bricks.Cols)
	}
	s.Reset()
	return s
}

// Reset restores the starting ball, paddle and a fully visible grid.
// Held movement flags are left untouched; they mirror physical keys.
func (s *State) Reset() {
	s.ball = Ball{
		X:    s.cfg.Ball.X,
		Y:    s.cfg.Ball.Y,
		VX:   s.cfg.Ball.VX,
		VY:   s.cfg.Ball.VY,
		Size: s.cfg.Ball.Size,
	}
	s.paddle = Paddle{
		X:      s.cfg.Paddle.X,
		Y:      s.cfg.Paddle.Y(s.cfg.Field.Height),
		Width:  s.cfg.Paddle.Width,
		Height: s.cfg.Paddle.Height,
	}
	s.initBricks()
	s.outcome = OutcomeNone
	s.tick = 0
}

// initBricks lays the grid out from the top-left margin.
func (s *State) initBricks() {
	b := s.cfg.Bricks
	for row := range s.bricks {
		for col := range s.bricks[row] {
			s.bricks[row][col] = Brick{
				Bounds: core.NewRect(
					b.MarginLeft+col*(b.Width+b.SpacingX),
					b.MarginTop+row*(b.Height+b.SpacingY),
					b.Width,
					b.Height,
				),
				Visible: true,
			}
		}
	}
}

// SetMoveLeft records whether the move-left key is held.
func (s *State) SetMoveLeft(held bool) {
	s.moveLeft = held
}

// SetMoveRight records whether the move-right key is held.
func (s *State) SetMoveRight(held bool) {
	s.moveRight = held
}

// Step advances the simulation by one tick and returns the outcome.
// After a terminal outcome Step does nothing until Reset.
func (s *State) Step() Outcome {
	if s.outcome.Terminal() {
		return s.outcome
	}
	s.tick++

	s.ball.X += s.ball.VX
	s.ball.Y += s.ball.VY

	if !s.bounceWalls() {
		s.outcome = OutcomeLost
		return s.outcome
	}

	s.movePaddle()
	s.resolveCollisions()

	if s.BricksRemaining() == 0 {
		s.outcome = OutcomeWon
	}
	return s.outcome
}

// bounceWalls reflects the ball off the side and top edges.
// Returns false when the ball has reached the bottom edge.
func (s *State) bounceWalls() bool {
	w, h := s.cfg.Field.Width, s.cfg.Field.Height

	if s.ball.X <= 0 || s.ball.X >= w-s.ball.Size {
		s.ball.VX = -s.ball.VX
	}

	if s.ball.Y <= 0 {
		s.ball.VY = -s.ball.VY
	} else if s.ball.Y >= h-s.ball.Size {
		return false
	}
	return true
}

// movePaddle applies the held keys, left first. Holding both keys cancels
// out except where the left move was clamped at the wall.
func (s *State) movePaddle() {
	step := s.cfg.Paddle.Step
	maxX := s.cfg.Field.Width - s.paddle.Width

	if s.moveLeft {
		s.paddle.X = core.Clamp(s.paddle.X-step, 0, maxX)
	}
	if s.moveRight {
		s.paddle.X = core.Clamp(s.paddle.X+step, 0, maxX)
	}
}

// resolveCollisions bounces the ball vertically off the paddle and off every
// visible brick it overlaps, scanning bricks row by row. Each overlapping
// brick is hidden and flips the vertical velocity once, so an even number of
// simultaneous hits leaves the direction unchanged.
func (s *State) resolveCollisions() {
	ball := s.ball.Bounds()

	if ball.Intersects(s.paddle.Bounds()) {
		s.ball.VY = -s.ball.VY
	}

	for row := range s.bricks {
		for col := range s.bricks[row] {
			brick := &s.bricks[row][col]
			if brick.Visible && ball.Intersects(brick.Bounds) {
				brick.Visible = false
				s.ball.VY = -s.ball.VY
			}
		}
	}
}

// Outcome returns the current terminal state.
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Won reports whether every brick has been destroyed.
func (s *State) Won() bool {
	return s.outcome == OutcomeWon
}

// Lost reports whether the ball reached the bottom edge.
func (s *State) Lost() bool {
	return s.outcome == OutcomeLost
}

// Ball returns a copy of the ball.
func (s *State) Ball() Ball {
	return s.ball
}

// Paddle returns a copy of the paddle.
func (s *State) Paddle() Paddle {
	return s.paddle
}

// Brick returns a copy of the brick at (row, col).
func (s *State) Brick(row, col int) Brick {
	return s.bricks[row][col]
}

// Rows returns the number of brick rows.
func (s *State) Rows() int {
	return len(s.bricks)
}

// Cols returns the number of brick columns.
func (s *State) Cols() int {
	if len(s.bricks) == 0 {
		return 0
	}
	return len(s.bricks[0])
}

// BricksRemaining returns the number of visible bricks.
func (s *State) BricksRemaining() int {
	count := 0
	for row := range s.bricks {
		for col := range s.bricks[row] {
			if s.bricks[row][col].Visible {
				count++
			}
		}
	}
	return count
}

// BricksTotal returns the size of the grid.
func (s *State) BricksTotal() int {
	return s.Rows() * s.Cols()
}

// Field returns the play-field size.
func (s *State) Field() (width, height int) {
	return s.cfg.Field.Width, s.cfg.Field.Height
}

// Tick returns the number of ticks simulated since the last Reset.
func (s *State) Tick() uint64 {
	return s.tick
}

// MoveLeft reports whether the move-left key is held.
func (s *State) MoveLeft() bool {
	return s.moveLeft
}

// MoveRight reports whether the move-right key is held.
func (s *State) MoveRight() bool {
	return s.moveRight
}
