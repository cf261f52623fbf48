// Package window drives the game in a desktop window with ebiten. Unlike a
// terminal, the window reports real key releases, so the arrow keys map
// straight onto the paddle setters.
package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/game"
	"github.com/vovakirdan/brickbreaker/internal/i18n"
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

// Options configures the window.
type Options struct {
	Title    string
	TickRate int

	// Logger receives round results. Nil discards them.
	Logger *log.Logger
}

// Game adapts a game.State to ebiten.Game.
type Game struct {
	state  *game.State
	msgs   i18n.Messages
	logger *log.Logger

	// reported is set once the end of the current round has been logged.
	reported bool
}

// NewGame wraps state for ebiten. The window uses the debug bitmap font,
// which only covers ASCII, so prompt texts are always English.
func NewGame(state *game.State, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		state:  state,
		msgs:   i18n.For(i18n.DefaultLang),
		logger: logger,
	}
}

// Update advances one tick. ebiten calls it at the configured TPS.
func (g *Game) Update() error {
	if outcome := g.state.Outcome(); outcome.Terminal() {
		if !g.reported {
			g.logger.Info("round ended",
				"outcome", outcome,
				"ticks", g.state.Tick(),
				"bricks", g.state.BricksRemaining(),
			)
			g.reported = true
		}

		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyY):
			g.state.Reset()
			g.reported = false
		case inpututil.IsKeyJustPressed(ebiten.KeyN):
			return ebiten.Termination
		}
		return nil
	}

	g.state.SetMoveLeft(ebiten.IsKeyPressed(ebiten.KeyArrowLeft))
	g.state.SetMoveRight(ebiten.IsKeyPressed(ebiten.KeyArrowRight))
	g.state.Step()
	return nil
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(core.ColorGray))

	for _, cmd := range g.state.Render() {
		b := cmd.Bounds
		switch cmd.Shape {
		case core.ShapeCircle:
			r := float32(b.W) / 2
			vector.DrawFilledCircle(screen, float32(b.X)+r, float32(b.Y)+r, r, rgba(cmd.Color), true)
		case core.ShapeRect:
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), rgba(cmd.Color), false)
		}
	}

	if outcome := g.state.Outcome(); outcome.Terminal() {
		g.drawDialog(screen, outcome)
	}
}

// Layout keeps the logical screen at the field size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.state.Field()
}

// drawDialog shows the retry prompt in a centred panel.
func (g *Game) drawDialog(screen *ebiten.Image, outcome game.Outcome) {
	title, body := g.msgs.LostTitle, g.msgs.LostBody
	if outcome == game.OutcomeWon {
		title, body = g.msgs.WonTitle, g.msgs.WonBody
	}
	lines := []string{
		title,
		"",
		body,
		"",
		fmt.Sprintf("[Y] %s / [N] %s", g.msgs.Yes, g.msgs.No),
	}

	widest := 0
	for _, line := range lines {
		widest = core.Max(widest, len(line))
	}

	fw, fh := g.state.Field()
	w := widest*glyphW + 4*glyphW
	h := len(lines)*glyphH + 2*glyphH
	x := (fw - w) / 2
	y := (fh - h) / 2

	// The debug font is white, so the panel is dark.
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), rgba(core.ColorBlack), false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, rgba(core.ColorYellow), false)

	for i, line := range lines {
		lx := x + (w-len(line)*glyphW)/2
		ebitenutil.DebugPrintAt(screen, line, lx, y+glyphH+i*glyphH)
	}
}

func rgba(c core.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Run opens the window and blocks until it is closed or the player declines
// another round.
func Run(state *game.State, opts Options) error {
	fw, fh := state.Field()

	ebiten.SetWindowSize(fw, fh)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(NewGame(state, opts.Logger)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
