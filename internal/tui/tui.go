// Package tui is the terminal face of the dialer: status bar, number input,
// call/hang up/mute buttons and a keypad, drawn with Bubble Tea.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-dialer/internal/dialer"
	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	dialer    dialer.Dialer
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(d dialer.Dialer, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{dialer: d, buildInfo: buildInfo, logger: log.WithComponent("tui")}
}

// Run blocks until the user quits (ErrUserQuit), the dialer stops or ctx is
// cancelled.
func (t *TUI) Run(ctx context.Context) error {
	feed, unsubscribe := t.dialer.Subscribe()
	defer unsubscribe()

	model := newDialerModel(ctx, t.dialer, feed, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Msg("terminal ui failed")
		return err
	}

	result, ok := finalModel.(dialerModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
