package tui

import "github.com/charmbracelet/lipgloss"

// Palette is one color theme. Themes are switched at runtime and the
// chosen name is persisted, so colors are explicit per theme instead
// of terminal-adaptive.
type Palette struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Dim       lipgloss.Color
	Accent    lipgloss.Color
	Border    lipgloss.Color
	TabFg     lipgloss.Color
	TabBg     lipgloss.Color
	StatusBg  lipgloss.Color
	StatusFg  lipgloss.Color
	Green     lipgloss.Color
}

var Light = Palette{
	Name:      "light",
	Primary:   lipgloss.Color("#5A56E0"),
	Secondary: lipgloss.Color("#3D3D3D"),
	Dim:       lipgloss.Color("#9B9B9B"),
	Accent:    lipgloss.Color("#F25D94"),
	Border:    lipgloss.Color("#DBDBDB"),
	TabFg:     lipgloss.Color("#FFFFFF"),
	TabBg:     lipgloss.Color("#EEEEEE"),
	StatusBg:  lipgloss.Color("#E8E8E8"),
	StatusFg:  lipgloss.Color("#3D3D3D"),
	Green:     lipgloss.Color("#04B575"),
}

var Dark = Palette{
	Name:      "dark",
	Primary:   lipgloss.Color("#7571F9"),
	Secondary: lipgloss.Color("#ABABAB"),
	Dim:       lipgloss.Color("#626262"),
	Accent:    lipgloss.Color("#F25D94"),
	Border:    lipgloss.Color("#383838"),
	TabFg:     lipgloss.Color("#FFFFFF"),
	TabBg:     lipgloss.Color("#2A2A3E"),
	StatusBg:  lipgloss.Color("#16213E"),
	StatusFg:  lipgloss.Color("#ABABAB"),
	Green:     lipgloss.Color("#25D366"),
}

// PaletteByName returns the named palette, falling back to light for
// anything unrecognized.
func PaletteByName(name string) Palette {
	if name == Dark.Name {
		return Dark
	}
	return Light
}

// Other returns the palette the toggle switches to.
func (p Palette) Other() Palette {
	if p.Name == Dark.Name {
		return Light
	}
	return Dark
}

// Label returns the theme name shown in the toolbar.
func (p Palette) Label() string {
	if p.Name == Dark.Name {
		return "다크"
	}
	return "라이트"
}
