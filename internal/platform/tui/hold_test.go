package tui

import "testing"

func TestKeyHoldReleasesAfterTicks(t *testing.T) {
	var h keyHold
	h.press(3)

	for i := 1; i <= 2; i++ {
		h.tick()
		if !h.held() {
			t.Fatalf("released early at tick %d", i)
		}
	}

	h.tick()
	if h.held() {
		t.Error("still held after the third tick")
	}

	h.tick()
	if h.held() {
		t.Error("released key became held again")
	}
}

func TestKeyHoldRepeatRearms(t *testing.T) {
	var h keyHold
	h.press(3)
	h.tick()
	h.tick()
	h.press(3)
	h.tick()
	h.tick()

	if !h.held() {
		t.Error("auto-repeat should keep the key held")
	}
}

func TestKeyHoldRelease(t *testing.T) {
	var h keyHold
	h.press(10)
	h.release()

	if h.held() {
		t.Error("expected key released")
	}
}
