// Package server wires and runs the application's HTTP transport.
//
// It owns the server lifecycle: startup, stop-signal handling, and graceful
// shutdown of in-flight requests.
package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/mpolacek/ufo-sightings/internal/config"
	handler "github.com/mpolacek/ufo-sightings/internal/handler/http"
	"github.com/mpolacek/ufo-sightings/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the HTTP transport server from the handler and server
// configuration.
func NewServer(h *handler.Handler, cfg config.Server, log *logger.Logger) (Server, error) {
	log.Info().Msg("creating new server...")

	if cfg.Address == "" {
		return nil, errNoAddressConfigured
	}

	return &server{
		httpServer: newHTTPServer(h.Init(), cfg, log),
		logger:     log,
	}, nil
}

// RunServer starts the HTTP server and blocks until a stop signal arrives,
// then shuts it down gracefully.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

// Shutdown gracefully stops the HTTP server.
func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
