package grpc

import (
	"google.golang.org/grpc"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/pb"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// Handler is the root gRPC transport handler. It implements [pb.VaultServer]
// by converting pb messages to models and delegating to the service layer.
//
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	pb.UnimplementedVaultServer

	// services provides access to all application business operations.
	services *service.Services

	// metrics is optional; nil disables RPC instrumentation.
	metrics *metrics.Metrics

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container,
// metrics registry and logger.
func NewHandler(services *service.Services, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}

// Init builds a [grpc.Server] with the interceptor chain and the vault
// service registered. The chain mirrors the HTTP middleware order:
// trace id, logging, metrics, panic recovery, then authentication.
func (h *Handler) Init(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecovery,
		h.auth,
	))

	server := grpc.NewServer(opts...)
	pb.RegisterVaultServer(server, h)
	return server
}
