package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-dialer/internal/config"
	handler "github.com/MKhiriev/go-dialer/internal/handler/http"
	"github.com/MKhiriev/go-dialer/internal/logger"
)

type server struct {
	httpServer *httpServer
	hub        *handler.Hub
	logger     *logger.Logger
}

// NewServer builds the control API server. It fails when no address is
// configured.
func NewServer(h *handler.Handler, cfg config.Control, log *logger.Logger) (Server, error) {
	log = log.WithComponent("server")
	log.Info().Msg("creating new server...")

	if !cfg.Enabled() {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(h.Init(), cfg, log),
		hub:        h.Hub(),
		logger:     log,
	}, nil
}

// Run listens on the configured address and runs the websocket hub next
// to it. Cancelling ctx stops both.
func (s *server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpServer.server.Addr, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hubDone := make(chan struct{})
	go func() {
		defer close(hubDone)
		_ = s.hub.Run(ctx)
	}()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer(ln)
	}()

	select {
	case <-ctx.Done():
		s.httpServer.Shutdown()
		err = <-serveErr
	case err = <-serveErr:
	}

	cancel()
	<-hubDone
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Addr() string {
	return s.httpServer.Addr()
}
