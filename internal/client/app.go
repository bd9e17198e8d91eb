package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/internal/tui"
	"github.com/MKhiriev/go-dialer/internal/workers"
)

type App struct {
	engine  Engine
	ui      UI
	workers *workers.Workers

	logger *logger.Logger
}

// NewApp wires the app. background lists optional extra workers such as
// the control API server; nil entries are ignored.
func NewApp(engine Engine, ui UI, log *logger.Logger, background ...workers.Worker) (*App, error) {
	if engine == nil || ui == nil {
		return nil, errors.New("client app requires a dialer and a ui")
	}

	return &App{
		engine:  engine,
		ui:      ui,
		workers: workers.NewWorkers(log, append([]workers.Worker{engine}, background...)...),
		logger:  log.WithComponent("app"),
	}, nil
}

// Run blocks until the UI returns, a background worker fails or the process
// receives SIGTERM, SIGINT or SIGQUIT. Quitting from the UI is a normal exit.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan error, 1)
	go func() {
		err := a.workers.Run(ctx)
		cancel()
		workersDone <- err
	}()

	if err := a.engine.Start(ctx); err != nil {
		cancel()
		<-workersDone
		return fmt.Errorf("start dialer: %w", err)
	}

	uiErr := a.ui.Run(ctx)
	cancel()
	workersErr := <-workersDone

	switch {
	case uiErr != nil && !errors.Is(uiErr, tui.ErrUserQuit):
		return fmt.Errorf("terminal ui: %w", uiErr)
	case workersErr != nil:
		return workersErr
	}

	a.logger.Info().Msg("dialer stopped")
	return nil
}
