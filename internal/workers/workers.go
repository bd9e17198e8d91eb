package workers

import (
	"context"

	"github.com/MKhiriev/go-dialer/internal/logger"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers skips nil workers so optional components can be passed as is.
func NewWorkers(log *logger.Logger, workers ...Worker) *Workers {
	w := &Workers{logger: log.WithComponent("workers")}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Run starts every worker in its own goroutine and waits for all of them.
// The first failure cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}

	w.logger.Debug().Int("count", len(w.workers)).Msg("workers started")
	err := g.Wait()
	if err != nil {
		w.logger.Err(err).Msg("worker failed")
	}
	return err
}
