package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Open      key.Binding
	Browser   key.Binding
	Back      key.Binding
	Search    key.Binding
	Filter    key.Binding
	Sort      key.Binding
	Theme     key.Binding
	Home      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("j/k", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("", ""),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "pgup"),
			key.WithHelp("←/→", "page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "pgdown"),
			key.WithHelp("", ""),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g/G", "first/last page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("", ""),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read"),
		),
		Browser: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open link"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "category"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the status bar hint line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.PrevPage, k.Open, k.Search, k.Filter, k.Sort, k.Help, k.Quit}
}

// FullHelp feeds the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.PrevPage, k.FirstPage, k.Open, k.Back},
		{k.Search, k.Filter, k.Sort, k.Theme, k.Browser},
		{k.Home, k.Help, k.Quit},
	}
}
