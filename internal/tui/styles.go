package tui

import (
	"github.com/MKhiriev/go-dialer/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	buttonStyle         = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())
	buttonFocusedStyle  = buttonStyle.BorderForeground(lipgloss.Color("12")).Bold(true)
	buttonDisabledStyle = buttonStyle.Faint(true)
	buttonActiveStyle   = buttonStyle.Foreground(lipgloss.Color("11"))

	keyStyle        = lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
	keyFocusedStyle = keyStyle.Reverse(true)
)

// statusStyles maps each tag to its indicator colour.
var statusStyles = map[models.StatusTag]lipgloss.Style{
	models.StatusInitializing: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	models.StatusOffline:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	models.StatusReady:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	models.StatusBusy:         lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	models.StatusError:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}
