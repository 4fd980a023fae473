package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	effortStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	loadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("84"))
	armStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	motorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("120"))

	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)

	selectedPanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("81")).
				Padding(0, 1)
	panelBorder = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// groupStyles color diagram panels by force-equivalence group; diagrams in
// the same group share a border color.
var groupStyles = []lipgloss.Style{
	lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("37")).Padding(0, 1),
	lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("71")).Padding(0, 1),
	lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("61")).Padding(0, 1),
	lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("133")).Padding(0, 1),
	lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("108")).Padding(0, 1),
	lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("31")).Padding(0, 1),
}

func groupStyle(group int, selected bool) lipgloss.Style {
	if selected {
		return selectedPanelBorder
	}
	return groupStyles[group%len(groupStyles)]
}
