package server

import (
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	myGRPC "github.com/MKhiriev/go-pass-vault/internal/handler/grpc"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type grpcServer struct {
	server          *grpc.Server
	address         string
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	return &grpcServer{
		server:          handler.Init(),
		address:         cfg.GRPCAddress,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// RunServer blocks until the server is stopped. A graceful stop is not an
// error.
func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}

	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server on %s: %w", g.address, err)
	}
	return nil
}

// Shutdown stops accepting calls and waits for pending ones. After
// shutdownTimeout the remaining calls are cancelled.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")

	ctx, cancel := shutdownContext(g.shutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
	}
}
