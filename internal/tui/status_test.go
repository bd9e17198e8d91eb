package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-dialer/internal/dialer"
	"github.com/MKhiriev/go-dialer/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle_OnePerTag(t *testing.T) {
	tags := []models.StatusTag{
		models.StatusInitializing,
		models.StatusOffline,
		models.StatusReady,
		models.StatusBusy,
		models.StatusError,
	}

	seen := make(map[string]models.StatusTag)
	for _, tag := range tags {
		fg := fmt.Sprint(statusStyle(tag).GetForeground())
		if other, dup := seen[fg]; dup {
			t.Errorf("tags %q and %q share indicator colour %s", tag, other, fg)
		}
		seen[fg] = tag
	}
}

func TestStatusStyle_UnknownFallsBackToOffline(t *testing.T) {
	assert.Equal(t,
		statusStyle(models.StatusOffline).GetForeground(),
		statusStyle(models.StatusTag("weird")).GetForeground(),
	)
}

func TestRenderStatus(t *testing.T) {
	out := renderStatus(models.NewStatus("Ready to Call", models.StatusReady))

	assert.Contains(t, out, statusIndicator)
	assert.Contains(t, out, "Ready to Call")
}

func TestSanitizeNumber(t *testing.T) {
	tests := map[string]string{
		"5551234":         "5551234",
		"(555) 123-4567":  "5551234567",
		"+1 555 123 4567": "+15551234567",
		"*72#":            "*72#",
		"call me":         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeNumber(in), in)
	}
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "Dialer stopped", humanizeError(dialer.ErrStopped))
	assert.Equal(t, "Network unavailable or server unreachable",
		humanizeError(errors.New("dial tcp 127.0.0.1:4444: connect: connection refused")))
	assert.Equal(t, "boom", humanizeError(errors.New("boom")))
}
