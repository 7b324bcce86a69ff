package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts
// every transport down gracefully. It returns the first error a transport
// fails with, such as an address that cannot be bound.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run launches all created servers and blocks until ctx is done or one of
// them fails. Either way every server is shut down before run returns.
func (s *server) run(ctx context.Context) error {
	errCh := make(chan error, 2)
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go func() { errCh <- s.httpServer.RunServer() }()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go func() { errCh <- s.gRPCServer.RunServer() }()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
		s.logger.Err(err).Msg("server stopped unexpectedly")
	}

	s.Shutdown()
	if err != nil {
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
