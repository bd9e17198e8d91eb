// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-dialer/internal/dialer"
	"github.com/MKhiriev/go-dialer/internal/workers"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Engine is the controller as seen by the app: a dialer that has to be
// run and started.
type Engine interface {
	dialer.Dialer
	workers.Worker

	Start(ctx context.Context) error
}

// UI blocks while the user interacts with the dialer.
type UI interface {
	Run(ctx context.Context) error
}
