package tui

import (
	"bytes"
	"testing"
	"time"
)

func TestBellDisabledByDefault(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)

	if b.Enabled() {
		t.Error("New bell should start disabled")
	}
	if b.Ring(time.Now()) {
		t.Error("Disabled bell rang")
	}
	if buf.Len() != 0 {
		t.Error("Disabled bell wrote output")
	}
}

func TestBellToggle(t *testing.T) {
	b := NewBell(nil)

	if !b.Toggle() || !b.Enabled() {
		t.Error("First toggle should enable")
	}
	if b.Toggle() || b.Enabled() {
		t.Error("Second toggle should disable")
	}
}

func TestBellRateLimit(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)
	b.Toggle()

	start := time.Now()
	if !b.Ring(start) {
		t.Fatal("First ring was suppressed")
	}
	if b.Ring(start.Add(time.Millisecond)) {
		t.Error("Ring inside the rate-limit window was not suppressed")
	}
	if !b.Ring(start.Add(bellInterval)) {
		t.Error("Ring after the window was suppressed")
	}

	if got := buf.String(); got != "\a\a" {
		t.Errorf("Expected exactly two BEL bytes, got %q", got)
	}
}

func TestBellBurstCap(t *testing.T) {
	b := NewBell(nil)
	b.Toggle()

	// A one-second burst of ring attempts every millisecond must be
	// capped at the rate limit.
	start := time.Now()
	rang := 0
	for i := 0; i < 1000; i++ {
		if b.Ring(start.Add(time.Duration(i) * time.Millisecond)) {
			rang++
		}
	}
	if rang > 120 {
		t.Errorf("Rang %d times in a second, cap is 120", rang)
	}
	if rang < 100 {
		t.Errorf("Rang only %d times, limiter too aggressive", rang)
	}
}
