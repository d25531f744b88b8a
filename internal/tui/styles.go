package tui

import "github.com/charmbracelet/lipgloss"

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// spectralColor maps a class letter to a rough blackbody tint.
var spectralColor = map[string]lipgloss.Style{
	"O": lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	"B": lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	"A": lipgloss.NewStyle().Foreground(lipgloss.Color("153")),
	"F": lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	"G": lipgloss.NewStyle().Foreground(lipgloss.Color("227")),
	"K": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	"M": lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
}
