package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/i18n"
)

// maxDialogWidth caps the retry box width in cells.
const maxDialogWidth = 48

// dialogText picks the title and body for a terminal outcome.
func dialogText(won bool, msgs i18n.Messages) (title, body string) {
	if won {
		return msgs.WonTitle, msgs.WonBody
	}
	return msgs.LostTitle, msgs.LostBody
}

// drawDialog draws the centred retry prompt over whatever is on dst.
func drawDialog(dst *core.Screen, title, body string, msgs i18n.Messages) {
	buttons := fmt.Sprintf("[Y] %s / [N] %s", msgs.Yes, msgs.No)

	width := core.Clamp(dst.Width()-2, 12, maxDialogWidth)
	lines := wrapText(body, width-4)

	// border, title, gap, body, gap, buttons, border
	height := len(lines) + 6
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorYellow)

	y := box.Y + 1
	drawCenteredIn(dst, box, y, title, core.ColorYellow)
	y += 2
	for _, line := range lines {
		drawCenteredIn(dst, box, y, line, core.ColorWhite)
		y++
	}
	y++
	drawCenteredIn(dst, box, y, buttons, core.ColorYellow)
}

// drawCenteredIn centres text horizontally inside box on row y.
func drawCenteredIn(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	inner := box.W - 2
	text = runewidth.Truncate(text, inner, "")
	x := box.X + 1 + (inner-runewidth.StringWidth(text))/2
	dst.DrawText(x, y, text, c)
}

// wrapText breaks text on spaces into lines no wider than width cells.
// Words wider than a whole line are split across lines.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.Fields(text) {
		for _, part := range splitWidth(word, width) {
			w := runewidth.StringWidth(part)

			if lineWidth > 0 && lineWidth+1+w > width {
				flush()
			}
			if lineWidth > 0 {
				line.WriteByte(' ')
				lineWidth++
			}
			line.WriteString(part)
			lineWidth += w
		}
	}
	if lineWidth > 0 {
		flush()
	}
	return lines
}

// splitWidth cuts word into pieces no wider than width cells.
func splitWidth(word string, width int) []string {
	if runewidth.StringWidth(word) <= width {
		return []string{word}
	}

	var parts []string
	var part strings.Builder
	partWidth := 0
	for _, r := range word {
		w := runewidth.RuneWidth(r)
		if partWidth+w > width && partWidth > 0 {
			parts = append(parts, part.String())
			part.Reset()
			partWidth = 0
		}
		part.WriteRune(r)
		partWidth += w
	}
	if partWidth > 0 {
		parts = append(parts, part.String())
	}
	return parts
}
