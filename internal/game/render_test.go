package game

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

func TestRenderOrder(t *testing.T) {
	g := newTestGame(t)
	cmds := g.Render()

	if len(cmds) != 42 {
		t.Fatalf("len(Render()) = %d, expected 42", len(cmds))
	}

	ball := cmds[0]
	if ball.Shape != core.ShapeCircle || ball.Color != BallColor || ball.Bounds != core.NewRect(350, 300, 20, 20) {
		t.Errorf("first command = %+v, expected blue ball", ball)
	}

	for i, cmd := range cmds[1:41] {
		row, col := i/10, i%10
		if cmd.Shape != core.ShapeRect || cmd.Color != BrickColor {
			t.Errorf("brick command %d = %+v", i, cmd)
		}
		if cmd.Bounds != g.Brick(row, col).Bounds {
			t.Errorf("brick command %d bounds %+v, expected brick (%d,%d)", i, cmd.Bounds, row, col)
		}
	}

	paddle := cmds[41]
	if paddle.Shape != core.ShapeRect || paddle.Color != PaddleColor || paddle.Bounds != core.NewRect(350, 575, 100, 15) {
		t.Errorf("last command = %+v, expected black paddle", paddle)
	}
}

func TestRenderSkipsHiddenBricks(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()
	snap.Visible[0] = false
	snap.Visible[15] = false
	g.ApplySnapshot(snap)

	cmds := g.Render()
	if len(cmds) != 40 {
		t.Fatalf("len(Render()) = %d, expected 40", len(cmds))
	}
	for _, cmd := range cmds {
		if cmd.Bounds == g.Brick(0, 0).Bounds || cmd.Bounds == g.Brick(1, 5).Bounds {
			t.Errorf("hidden brick rendered: %+v", cmd)
		}
	}
}

func TestRenderIsPure(t *testing.T) {
	g := newTestGame(t)
	g.Step()
	before := g.Snapshot()

	first := g.Render()
	second := g.Render()

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated Render calls differ")
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Render changed the state")
	}
}
