package tui

import (
	"io"
	"time"
)

// bellInterval throttles bounce alerts so they cannot overlap at high
// frame rates: at most 120 triggers per second.
const bellInterval = time.Second / 120

// Bell is the single-tone alert: it writes the terminal BEL character.
// Disabled by default, toggled with the sound key.
type Bell struct {
	out         io.Writer
	enabled     bool
	minInterval time.Duration
	last        time.Time
}

// NewBell creates a disabled bell writing to out.
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out, minInterval: bellInterval}
}

// Toggle flips the enabled state and reports the new one.
func (b *Bell) Toggle() bool {
	b.enabled = !b.enabled
	return b.enabled
}

// Enabled reports whether the bell is on.
func (b *Bell) Enabled() bool {
	return b.enabled
}

// Ring emits a BEL unless disabled or inside the rate-limit window.
// Reports whether a tone was actually emitted.
func (b *Bell) Ring(now time.Time) bool {
	if !b.enabled {
		return false
	}
	if now.Sub(b.last) < b.minInterval {
		return false
	}
	b.last = now
	if b.out != nil {
		_, _ = b.out.Write([]byte{'\a'})
	}
	return true
}
