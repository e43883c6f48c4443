package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeutschler/sqlpong/internal/config"
	"github.com/zeutschler/sqlpong/internal/core"
	"github.com/zeutschler/sqlpong/internal/glyph"
	"github.com/zeutschler/sqlpong/internal/sim"
)

const title = "sqlpong - SQLite playing Pong against itself (in SQL)"

// Model is the Bubble Tea model driving one match: it steps the simulation
// on each tick, paints the frame and handles the four control keys.
type Model struct {
	match  *sim.Match
	screen *core.Screen
	pacing config.PacingSettings
	keys   KeyMap
	help   help.Model
	bell   *Bell

	rows     []string // latest rendered field
	snap     sim.Snapshot
	prev     sim.Snapshot
	havePrev bool

	fps       int
	uncapped  bool
	holdTicks int  // remaining ticks of the post-score pause
	flash     bool // field drawn in flash color while holding
	actualFPS float64
	lastTick  time.Time
	started   time.Time

	err      error
	quitting bool
}

// NewModel creates a model for the given match. The bell is shared so the
// caller can point it at the real terminal or a test buffer.
func NewModel(match *sim.Match, cfg config.Config, bell *Bell) Model {
	field := match.Field()
	return Model{
		match:   match,
		screen:  core.NewScreen(field.Width, field.Height),
		pacing:  cfg.Pacing,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		bell:    bell,
		fps:     cfg.Pacing.FPS,
		started: time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps, m.uncapped)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Sound):
		m.bell.Toggle()

	case key.Matches(msg, m.keys.Faster):
		// Doubling past the cap switches to uncapped mode.
		if m.uncapped {
			break
		}
		if m.fps >= m.pacing.MaxFPS {
			m.uncapped = true
		} else {
			m.fps = core.Min(m.fps*2, m.pacing.MaxFPS)
		}

	case key.Matches(msg, m.keys.Slower):
		if m.uncapped {
			m.uncapped = false
			m.fps = m.pacing.MaxFPS
		} else if m.fps/2 >= m.pacing.MinFPS {
			m.fps /= 2
		}
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		if dt := now.Sub(m.lastTick); dt > 0 {
			m.actualFPS = float64(time.Second) / float64(dt)
		}
	}
	m.lastTick = now

	// Post-score pause: keep the flash on screen, skip simulation ticks.
	if m.holdTicks > 0 {
		m.holdTicks--
		if m.holdTicks == 0 {
			m.flash = false
		}
		return m, tickCmd(m.fps, m.uncapped)
	}

	snap, err := m.match.Step()
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	rows, err := m.match.Frame()
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	// Flash, pause and sound are all skipped in uncapped mode, where the
	// point is raw tick throughput.
	if m.havePrev && !m.uncapped {
		switch {
		case snap.ScoreA != m.prev.ScoreA || snap.ScoreB != m.prev.ScoreB:
			m.flash = true
			m.holdTicks = core.Max(1, m.fps/2)
			m.bell.Ring(now)
		case snap.VX*m.prev.VX < 0:
			// Sign flip means a paddle bounce.
			m.bell.Ring(now)
		}
	}
	m.prev = snap
	m.havePrev = true
	m.snap = snap
	m.rows = rows

	return m, tickCmd(m.fps, m.uncapped)
}

// View paints the field, the big scores and the two status rows.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.paintField()

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(m.statusLine())
	return sb.String()
}

// paintField copies the rendered frame into the screen buffer, colorizing
// by glyph, then overlays the 3x5 score digits.
func (m Model) paintField() {
	m.screen.Clear()
	field := m.match.Field()

	for y, row := range m.rows {
		x := 0
		for _, r := range row {
			m.screen.SetCell(x, y, r, m.cellColor(r, x, field))
			x++
		}
	}

	scoreColor := core.ColorGray
	if m.flash {
		scoreColor = core.ColorGreen
	}
	// A right-aligned toward the center line, B left-aligned past it.
	ax := field.Width/2 - 2 - glyph.Width(m.snap.ScoreA)
	glyph.DrawNumber(m.screen, m.snap.ScoreA, ax, 1, scoreColor)
	glyph.DrawNumber(m.screen, m.snap.ScoreB, field.Width/2+3, 1, scoreColor)
}

func (m Model) cellColor(r rune, x int, field sim.FieldConfig) core.Color {
	switch r {
	case sim.BorderChar:
		return core.ColorGray
	case sim.SolidChar:
		if x == field.Width/2 {
			return core.ColorGray // center line
		}
		if m.flash {
			return core.ColorGreen
		}
		return core.ColorBrightWhite // paddles and ball
	default:
		return core.ColorDefault
	}
}

func (m Model) statusLine() string {
	sound := "OFF"
	if m.bell.Enabled() {
		sound = "ON"
	}
	rate := fmt.Sprintf("%d fps", m.fps)
	if m.uncapped {
		rate = fmt.Sprintf("%.0f fps MAX", m.actualFPS)
	}

	var sb strings.Builder
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString(statusStyle.Render("  sound ["))
	sb.WriteString(valueStyle.Render(sound))
	sb.WriteString(statusStyle.Render("]  rate ["))
	sb.WriteString(valueStyle.Render(rate))
	sb.WriteString(statusStyle.Render("]"))
	return sb.String()
}

// Result is what a finished session reports back to the CLI.
type Result struct {
	Snapshot sim.Snapshot
	Duration time.Duration
}

// Run drives the match until the user quits and returns the final state.
func Run(match *sim.Match, cfg config.Config) (Result, error) {
	model := NewModel(match, cfg, NewBell(os.Stdout))

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("tui: unexpected final model type %T", final)
	}
	if m.err != nil {
		return Result{}, m.err
	}
	return Result{Snapshot: m.snap, Duration: time.Since(m.started)}, nil
}
