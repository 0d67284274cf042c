package scene

import "time"

// Tooltip holds the hover text and the single timer that hides it.
// Showing new text re-arms the timer. A pinned tooltip ignores hovers and
// never expires until unpinned.
type Tooltip struct {
	delay   time.Duration
	text    string
	shownAt time.Time
	pinned  bool
}

func NewTooltip(delay time.Duration) *Tooltip {
	return &Tooltip{delay: delay}
}

func (t *Tooltip) Show(text string, now time.Time) {
	if t.pinned {
		return
	}
	t.text = text
	t.shownAt = now
}

// Text returns the visible text at now, clearing it once the delay elapsed.
func (t *Tooltip) Text(now time.Time) string {
	if t.text != "" && !t.pinned && t.delay > 0 && now.Sub(t.shownAt) >= t.delay {
		t.text = ""
	}
	return t.text
}

// TogglePin fixes the current text in place, or releases it. Releasing
// restarts the hide timer from now.
func (t *Tooltip) TogglePin(now time.Time) {
	if t.pinned {
		t.pinned = false
		t.shownAt = now
		return
	}
	if t.text != "" {
		t.pinned = true
	}
}

func (t *Tooltip) Pinned() bool { return t.pinned }

func (t *Tooltip) Clear() {
	t.text = ""
	t.pinned = false
}
