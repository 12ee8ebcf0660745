package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("69")
	colorMuted  = lipgloss.Color("241")
	colorWarn   = lipgloss.Color("203")

	appTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(colorAccent).
			Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Foreground(colorMuted).Italic(true).PaddingLeft(2)
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
	dialogTitleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle       = lipgloss.NewStyle().Foreground(colorMuted).Width(13)
	menuItemStyle    = lipgloss.NewStyle().PaddingLeft(2)
	menuCursorStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	toastStyle       = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("238")).
				Padding(0, 1)
	alertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(colorWarn).
			Padding(0, 1)
)
