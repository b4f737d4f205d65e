package browse

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the browser.
type Styles struct {
	Title     lipgloss.Style
	Heading   lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	IDCell    lipgloss.Style
	Male      lipgloss.Style
	Female    lipgloss.Style
	Border    lipgloss.Style
	Notice    lipgloss.Style
	Help      lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244")),
		Tab:       lipgloss.NewStyle().Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(lipgloss.Color("39")),
		Header:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:      lipgloss.NewStyle().Padding(0, 1),
		IDCell:    lipgloss.NewStyle().Padding(0, 1).Bold(true),
		Male:      lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("33")),
		Female:    lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("160")),
		Border:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Notice:    lipgloss.NewStyle().Italic(true).Padding(1, 0),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
	}
}
