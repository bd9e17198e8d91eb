// Package server runs the local control API over HTTP.
//
// The server is a [workers.Worker]: it listens until its context is
// cancelled and then shuts down gracefully.
package server
