package tui

// keyHold emulates a key release for terminals, which only report presses.
// A press holds the key for a number of ticks; auto-repeat re-arms it.
type keyHold struct {
	remaining int
}

// press holds the key for ticks ticks.
func (h *keyHold) press(ticks int) {
	h.remaining = ticks
}

// release drops the key immediately.
func (h *keyHold) release() {
	h.remaining = 0
}

// held reports whether the key is down.
func (h *keyHold) held() bool {
	return h.remaining > 0
}

// tick counts one tick down.
func (h *keyHold) tick() {
	if h.remaining > 0 {
		h.remaining--
	}
}
