package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zeutschler/sqlpong/internal/storage"
)

// historyKeyMap defines the key bindings for the match history view.
type historyKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func defaultHistoryKeyMap() historyKeyMap {
	return historyKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// historyModel shows recent matches in a scrollable table with a totals
// line underneath.
type historyModel struct {
	table    table.Model
	keys     historyKeyMap
	totals   storage.Totals
	quitting bool
}

func newHistoryModel(records []storage.MatchRecord, totals storage.Totals) historyModel {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Score", Width: 9},
		{Title: "Ticks", Width: 10},
		{Title: "Duration", Width: 10},
		{Title: "Seed", Width: 20},
		{Title: "Played", Width: 17},
	}

	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d : %d", r.ScoreA, r.ScoreB),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%ds", r.DurationSecs),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("3"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("15")).Bold(true)
	t.SetStyles(styles)

	return historyModel{
		table:  t,
		keys:   defaultHistoryKeyMap(),
		totals: totals,
	}
}

func (m historyModel) Init() tea.Cmd {
	return nil
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m historyModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("sqlpong match history"))
	sb.WriteString("\n\n")
	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(fmt.Sprintf(
		"%d matches, A %d : %d B over %d ticks  (q to quit)",
		m.totals.Matches, m.totals.PointsA, m.totals.PointsB, m.totals.Ticks,
	)))
	return sb.String()
}

// RunHistory shows the recent match table for the given store.
func RunHistory(store *storage.Store, limit int) error {
	records, err := store.RecentMatches(limit)
	if err != nil {
		return err
	}
	totals, err := store.TotalStats()
	if err != nil {
		return err
	}

	p := tea.NewProgram(newHistoryModel(records, totals), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
