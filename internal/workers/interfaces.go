// Package workers runs the long-lived loops of the dialer process (the
// controller loop, the control API server, the websocket hub) under one
// context.
package workers

import "context"

// Worker blocks in Run until ctx is cancelled or it fails.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
