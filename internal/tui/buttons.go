package tui

import (
	"github.com/MKhiriev/go-dialer/models"
	"github.com/charmbracelet/lipgloss"
)

type button int

const (
	buttonCall button = iota
	buttonHangup
	buttonMute

	buttonCount
)

func (b button) label(snap models.DialerSnapshot) string {
	switch b {
	case buttonCall:
		return "Call"
	case buttonHangup:
		return "Hang up"
	default:
		return snap.Mute.Label
	}
}

func (b button) enabled(snap models.DialerSnapshot) bool {
	switch b {
	case buttonCall:
		return snap.Controls.CallEnabled
	case buttonHangup:
		return snap.Controls.HangupEnabled
	default:
		return snap.Controls.MuteEnabled
	}
}

// renderButtons draws the button row. Disabled buttons are faint; the mute
// button is highlighted while active.
func renderButtons(snap models.DialerSnapshot, focused bool, selected button) string {
	cells := make([]string, 0, buttonCount)
	for b := buttonCall; b < buttonCount; b++ {
		style := buttonStyle
		switch {
		case !b.enabled(snap):
			style = buttonDisabledStyle
		case focused && b == selected:
			style = buttonFocusedStyle
		case b == buttonMute && snap.Mute.Active:
			style = buttonActiveStyle
		}
		cells = append(cells, style.Render(b.label(snap)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
