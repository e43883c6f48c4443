package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeutschler/sqlpong/internal/config"
	"github.com/zeutschler/sqlpong/internal/sim"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	match, err := sim.NewMatch(cfg.FieldConfig(), cfg.AIConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewMatch() failed: %v", err)
	}
	t.Cleanup(func() { match.Close() })
	return NewModel(match, cfg, NewBell(nil))
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update() returned %T, expected Model", next)
		}
	}
	return m
}

func TestFrameRateKeys(t *testing.T) {
	m := newTestModel(t)
	if m.fps != 30 || m.uncapped {
		t.Fatalf("Unexpected starting pace: fps=%d uncapped=%v", m.fps, m.uncapped)
	}

	// Doubling: 30 -> 60 -> 120 (cap) -> uncapped.
	m = press(t, m, "+")
	if m.fps != 60 {
		t.Errorf("After one '+': fps=%d, expected 60", m.fps)
	}
	m = press(t, m, "+")
	if m.fps != 120 {
		t.Errorf("After two '+': fps=%d, expected 120", m.fps)
	}
	m = press(t, m, "+")
	if !m.uncapped {
		t.Error("'+' at the cap should switch to uncapped mode")
	}
	m = press(t, m, "+")
	if !m.uncapped {
		t.Error("'+' while uncapped should stay uncapped")
	}

	// '-' first leaves uncapped mode, then halves down to the floor.
	m = press(t, m, "-")
	if m.uncapped || m.fps != 120 {
		t.Errorf("'-' should drop to the cap: fps=%d uncapped=%v", m.fps, m.uncapped)
	}
	m = press(t, m, "-", "-", "-")
	if m.fps != 15 {
		t.Errorf("Halving should stop at the floor: fps=%d", m.fps)
	}
	m = press(t, m, "-")
	if m.fps != 15 {
		t.Errorf("'-' below the floor changed fps to %d", m.fps)
	}
}

func TestSoundToggleKey(t *testing.T) {
	m := newTestModel(t)
	if m.bell.Enabled() {
		t.Fatal("Sound should start off")
	}
	m = press(t, m, "s")
	if !m.bell.Enabled() {
		t.Error("'s' did not enable sound")
	}
	m = press(t, m, "s")
	if m.bell.Enabled() {
		t.Error("Second 's' did not disable sound")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if !m.quitting {
		t.Error("Esc did not set quitting")
	}
	if cmd == nil {
		t.Error("Esc should return tea.Quit")
	}
}

func TestTickAdvancesMatch(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("Tick did not schedule the next tick")
	}
	if m.err != nil {
		t.Fatalf("Tick failed: %v", m.err)
	}
	if m.snap.Tick != 1 {
		t.Errorf("Expected tick 1 after one update, got %d", m.snap.Tick)
	}
	if len(m.rows) != m.match.Field().Height {
		t.Errorf("Expected %d field rows, got %d", m.match.Field().Height, len(m.rows))
	}
}

func TestViewShowsStatus(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(TickMsg(time.Now()))
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "sound [") || !strings.Contains(view, "rate [") {
		t.Error("View missing the status indicators")
	}
	if !strings.Contains(view, "30 fps") {
		t.Error("View missing the frame rate")
	}

	m = press(t, m, "+", "+", "+")
	if !strings.Contains(m.View(), "MAX") {
		t.Error("Uncapped mode not shown in the status row")
	}
}
