package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds every style the views use, derived from one palette.
// Rebuilt whenever the theme toggles.
type Styles struct {
	Header     lipgloss.Style
	HeaderDate lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabSep      lipgloss.Style
	ToolbarMeta lipgloss.Style

	Rank         lipgloss.Style
	ItemTitle    lipgloss.Style
	ItemSelected lipgloss.Style
	ItemSummary  lipgloss.Style
	ItemMeta     lipgloss.Style
	ItemCategory lipgloss.Style
	EmptyMessage lipgloss.Style
	LoadingText  lipgloss.Style
	ErrorText    lipgloss.Style

	DetailTitle   lipgloss.Style
	DetailLink    lipgloss.Style
	DetailMeta    lipgloss.Style
	DetailHeading lipgloss.Style
	DetailBody    lipgloss.Style

	PagerOn  lipgloss.Style
	PagerOff lipgloss.Style
	PagerNum lipgloss.Style

	StatusBar    lipgloss.Style
	Spinner      lipgloss.Style
	SearchPrompt lipgloss.Style

	HelpCard lipgloss.Style
	HelpDim  lipgloss.Style
}

func NewStyles(p Palette) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			PaddingLeft(1),

		HeaderDate: lipgloss.NewStyle().
			Foreground(p.Dim),

		TabActive: lipgloss.NewStyle().
			Foreground(p.TabFg).
			Background(p.Primary).
			Padding(0, 1).
			Bold(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Background(p.TabBg).
			Padding(0, 1),

		TabSep: lipgloss.NewStyle().
			Foreground(p.Dim),

		ToolbarMeta: lipgloss.NewStyle().
			Foreground(p.Dim),

		Rank: lipgloss.NewStyle().
			Foreground(p.Dim),

		ItemTitle: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		ItemSelected: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		ItemSummary: lipgloss.NewStyle().
			Foreground(p.Secondary),

		ItemMeta: lipgloss.NewStyle().
			Foreground(p.Dim),

		ItemCategory: lipgloss.NewStyle().
			Foreground(p.Green),

		EmptyMessage: lipgloss.NewStyle().
			Foreground(p.Dim),

		LoadingText: lipgloss.NewStyle().
			Foreground(p.Secondary),

		ErrorText: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		DetailLink: lipgloss.NewStyle().
			Foreground(p.Dim).
			Italic(true).
			Underline(true),

		DetailMeta: lipgloss.NewStyle().
			Foreground(p.Green),

		DetailHeading: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		DetailBody: lipgloss.NewStyle().
			Foreground(p.Secondary),

		PagerOn: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		PagerOff: lipgloss.NewStyle().
			Foreground(p.Dim),

		PagerNum: lipgloss.NewStyle().
			Foreground(p.Secondary),

		StatusBar: lipgloss.NewStyle().
			Background(p.StatusBg).
			Foreground(p.StatusFg).
			PaddingLeft(1).
			PaddingRight(1),

		Spinner: lipgloss.NewStyle().
			Foreground(p.Accent),

		SearchPrompt: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		HelpCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),

		HelpDim: lipgloss.NewStyle().
			Foreground(p.Dim),
	}
}
