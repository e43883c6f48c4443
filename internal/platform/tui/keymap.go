package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the in-game key bindings. Defined with bubbles/key so the
// status row can render help for them.
type KeyMap struct {
	Quit   key.Binding
	Sound  key.Binding
	Faster key.Binding
	Slower key.Binding
}

// ShortHelp returns the bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Sound, k.Faster, k.Slower}
}

// FullHelp returns the bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit, k.Sound}, {k.Faster, k.Slower}}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "sound"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
	}
}
