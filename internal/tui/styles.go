package tui

import "github.com/charmbracelet/lipgloss"

const (
	appPaddingTop  = 1
	appPaddingLeft = 2
)

var (
	appStyle         = lipgloss.NewStyle().Padding(appPaddingTop, appPaddingLeft)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	itemStyle        = lipgloss.NewStyle()
	highlightStyle   = lipgloss.NewStyle().Reverse(true)
	itemDetailStyle  = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	previousHdrStyle = lipgloss.NewStyle().Italic(true).Faint(true)
)
