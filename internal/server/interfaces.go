package server

import "context"

// Server is the lifecycle contract of the transport servers in this
// package.
type Server interface {
	// Run serves requests until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error

	// Addr is the bound address, empty before Run starts listening.
	Addr() string
}
