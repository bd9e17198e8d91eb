package tui

import (
	"github.com/MKhiriev/go-dialer/models"
	"github.com/charmbracelet/lipgloss"
)

const statusIndicator = "●"

// statusStyle picks the single indicator style for tag. Unknown tags fall
// back to offline.
func statusStyle(tag models.StatusTag) lipgloss.Style {
	if s, ok := statusStyles[tag]; ok {
		return s
	}
	return statusStyles[models.StatusOffline]
}

// renderStatus is the status presenter: indicator plus text.
func renderStatus(status models.Status) string {
	return statusStyle(status.Tag).Render(statusIndicator) + " " + status.Text
}
