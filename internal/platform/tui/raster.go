package tui

import "github.com/vovakirdan/brickbreaker/internal/core"

// Glyphs used when rasterizing shapes.
const (
	CircleGlyph = '●'
	RectGlyph   = '█'
)

// Rasterize paints draw commands, given in field units, onto dst scaled so
// the whole field covers the screen. Every shape covers at least one cell.
// Later commands overwrite earlier ones.
func Rasterize(dst *core.Screen, cmds []core.DrawCommand, fieldW, fieldH int) {
	cols, rows := dst.Width(), dst.Height()
	if cols <= 0 || rows <= 0 || fieldW <= 0 || fieldH <= 0 {
		return
	}

	for _, cmd := range cmds {
		cell := toCells(cmd.Bounds, cols, rows, fieldW, fieldH)

		glyph := RectGlyph
		if cmd.Shape == core.ShapeCircle {
			glyph = CircleGlyph
		}
		dst.DrawRect(cell, glyph, cmd.Color)
	}
}

// toCells maps a field rectangle to the cell rectangle that covers it.
func toCells(r core.Rect, cols, rows, fieldW, fieldH int) core.Rect {
	x0 := scaleDown(r.X, cols, fieldW)
	x1 := scaleUp(r.Right(), cols, fieldW)
	y0 := scaleDown(r.Y, rows, fieldH)
	y1 := scaleUp(r.Bottom(), rows, fieldH)

	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// scaleDown maps v to cells rounding toward negative infinity.
func scaleDown(v, cells, field int) int {
	n := v * cells
	if n < 0 {
		return (n - field + 1) / field
	}
	return n / field
}

// scaleUp maps v to cells rounding toward positive infinity.
func scaleUp(v, cells, field int) int {
	n := v * cells
	if n < 0 {
		return n / field
	}
	return (n + field - 1) / field
}
