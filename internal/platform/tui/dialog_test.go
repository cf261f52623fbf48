package tui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/i18n"
)

func TestWrapText(t *testing.T) {
	lines := wrapText("Congratulations! You cleared every brick! Play again?", 20)

	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %q", lines)
	}
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > 20 {
			t.Errorf("line %q is %d cells wide", line, w)
		}
	}
	if got := strings.Join(lines, " "); got != "Congratulations! You cleared every brick! Play again?" {
		t.Errorf("wrapping lost words: %q", got)
	}
}

func TestWrapTextSplitsLongWords(t *testing.T) {
	body := i18n.For("ko").LostBody

	for _, width := range []int{14, 12, 8} {
		lines := wrapText(body, width)

		for _, line := range lines {
			if w := runewidth.StringWidth(line); w > width {
				t.Errorf("width %d: line %q is %d cells wide", width, line, w)
			}
		}

		got := strings.ReplaceAll(strings.Join(lines, ""), " ", "")
		want := strings.ReplaceAll(body, " ", "")
		if got != want {
			t.Errorf("width %d: text lost in wrapping, got %q", width, got)
		}
	}
}

func TestDrawDialogNarrowScreen(t *testing.T) {
	msgs := i18n.For("ko")
	screen := core.NewScreen(minScreenW, 23)

	title, body := dialogText(false, msgs)
	drawDialog(screen, title, body, msgs)

	out := screen.String()
	lines := wrapText(body, minScreenW-2-4)
	if len(lines) == 0 || !strings.HasSuffix(lines[len(lines)-1], "까?") {
		t.Fatalf("wrapped body lost its tail: %q", lines)
	}
	for _, line := range lines {
		if !strings.Contains(out, line) {
			t.Errorf("dialog missing line %q:\n%s", line, out)
		}
	}
}

func TestDrawDialogKorean(t *testing.T) {
	msgs := i18n.For("ko")
	screen := core.NewScreen(80, 23)

	title, body := dialogText(false, msgs)
	drawDialog(screen, title, body, msgs)

	out := screen.String()
	for _, want := range []string{msgs.LostTitle, msgs.LostBody, "[Y] 예 / [N] 아니오"} {
		if !strings.Contains(out, want) {
			t.Errorf("dialog missing %q:\n%s", want, out)
		}
	}
}
