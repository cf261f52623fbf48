package game

// Snapshot captures the simulation state with primitive types only.
type Snapshot struct {
	Tick      uint64
	BallX     int
	BallY     int
	BallVX    int
	BallVY    int
	PaddleX   int
	MoveLeft  bool
	MoveRight bool
	Outcome   Outcome

	// Brick visibility, flattened row-major: row*cols + col
	Visible []bool
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	visible := make([]bool, 0, s.BricksTotal())
	for row := range s.bricks {
		for col := range s.bricks[row] {
			visible = append(visible, s.bricks[row][col].Visible)
		}
	}

	return Snapshot{
		Tick:      s.tick,
		BallX:     s.ball.X,
		BallY:     s.ball.Y,
		BallVX:    s.ball.VX,
		BallVY:    s.ball.VY,
		PaddleX:   s.paddle.X,
		MoveLeft:  s.moveLeft,
		MoveRight: s.moveRight,
		Outcome:   s.outcome,
		Visible:   visible,
	}
}

// ApplySnapshot restores state captured by Snapshot. Brick data that does not
// match the grid size is ignored.
func (s *State) ApplySnapshot(snap Snapshot) {
	s.tick = snap.Tick
	s.ball.X = snap.BallX
	s.ball.Y = snap.BallY
	s.ball.VX = snap.BallVX
	s.ball.VY = snap.BallVY
	s.paddle.X = snap.PaddleX
	s.moveLeft = snap.MoveLeft
	s.moveRight = snap.MoveRight
	s.outcome = snap.Outcome

	if len(snap.Visible) != s.BricksTotal() {
		return
	}
	cols := s.Cols()
	for row := range s.bricks {
		for col := range s.bricks[row] {
			s.bricks[row][col].Visible = snap.Visible[row*cols+col]
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.BallX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.MoveLeft)
	h = h*31 + boolBit(snap.MoveRight)

	for _, v := range snap.Visible {
		h = h*31 + boolBit(v)
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
