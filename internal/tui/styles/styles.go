package styles

import "github.com/charmbracelet/lipgloss"

// Palette holds the colors of one theme variant.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Function   lipgloss.Color
	Equals     lipgloss.Color
	Error      lipgloss.Color
}

var (
	Light = Palette{
		Background: lipgloss.Color("#FFFFFF"),
		Foreground: lipgloss.Color("#1C1B1F"),
		Muted:      lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#7B61FF"),
		Function:   lipgloss.Color("#D08770"),
		Equals:     lipgloss.Color("#2E9E5B"),
		Error:      lipgloss.Color("#B3261E"),
	}

	Dark = Palette{
		Background: lipgloss.Color("#1C1B1F"),
		Foreground: lipgloss.Color("#E6E1E5"),
		Muted:      lipgloss.Color("#959595"),
		Accent:     lipgloss.Color("#B8A9FF"),
		Function:   lipgloss.Color("#EBCB8B"),
		Equals:     lipgloss.Color("#73F59F"),
		Error:      lipgloss.Color("#FF6B6B"),
	}
)

// Styles defines the calculator UI styles for one variant
type Styles struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Display  lipgloss.Style
	Number   lipgloss.Style
	Operator lipgloss.Style
	Function lipgloss.Style
	Equals   lipgloss.Style
	Pressed  lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// DisplayWidth is the inner width of the display box, matching four key cells.
const DisplayWidth = 4*KeyWidth + 6

// KeyWidth is the inner width of one key cell.
const KeyWidth = 5

// For returns the styles for the dark or light variant.
func For(dark bool) Styles {
	p := Light
	if dark {
		p = Dark
	}

	key := lipgloss.NewStyle().
		Width(KeyWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2).
			Foreground(p.Foreground),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			MarginBottom(1),
		Display: lipgloss.NewStyle().
			Width(DisplayWidth).
			Align(lipgloss.Right).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Foreground(p.Foreground),
		Number:   key.Foreground(p.Foreground),
		Operator: key.Foreground(p.Accent).Bold(true),
		Function: key.Foreground(p.Function),
		Equals:   key.Foreground(p.Equals).Bold(true),
		Pressed: key.
			Foreground(p.Background).
			Background(p.Accent).
			BorderForeground(p.Accent),
		Status: lipgloss.NewStyle().
			Foreground(p.Muted),
		Error: lipgloss.NewStyle().
			Foreground(p.Error),
		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
	}
}
