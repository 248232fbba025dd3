package menubar

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used to render the bar and its panels.
type Styles struct {
	Bar       lipgloss.Style
	BarItem   lipgloss.Style
	Selected  lipgloss.Style
	Disabled  lipgloss.Style
	Delimiter lipgloss.Style
	Panel     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default menu bar styles.
func DefaultStyles() Styles {
	return NewStyles(lipgloss.Color("205"), lipgloss.Color("240"))
}

// NewStyles builds a style set from an accent and a dim color.
func NewStyles(accent, dim lipgloss.Color) Styles {
	return Styles{
		Bar:       lipgloss.NewStyle().Bold(true),
		BarItem:   lipgloss.NewStyle().Padding(0, 1),
		Selected:  lipgloss.NewStyle().Padding(0, 1).Foreground(accent).Bold(true),
		Disabled:  lipgloss.NewStyle().Padding(0, 1).Foreground(dim),
		Delimiter: lipgloss.NewStyle().Foreground(dim),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).BorderForeground(dim),
		Help:      lipgloss.NewStyle().Foreground(dim),
	}
}
