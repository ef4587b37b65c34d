package browse

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the browser key bindings.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextMonth key.Binding
	PrevMonth key.Binding
	Quit      key.Binding
}

// ShortHelp returns the bindings for the help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMonth, k.PrevMonth, k.Quit}
}

// FullHelp returns the bindings grouped for expanded help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMonth, k.PrevMonth, k.Quit},
	}
}

// defaultKeys returns the browser key bindings.
// Up and Down are handled by the table widget; they are listed for help only.
func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "next month"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "prev month"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
