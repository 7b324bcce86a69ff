package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/pb"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

const (
	traceIDKey       = "x-trace-id"
	authorizationKey = "authorization"
	maxTraceIDLength = 128
)

// publicMethods are served without a bearer token.
var publicMethods = map[string]struct{}{
	pb.Vault_Signup_FullMethodName: {},
	pb.Vault_Login_FullMethodName:  {},
}

func metadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// withTraceID attaches a child logger carrying trace_id to the call context
// and echoes the id in the response header.
func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := metadataValue(ctx, traceIDKey)
	if traceID == "" || len(traceID) > maxTraceIDLength {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	// fails only outside a real server stream, e.g. in unit tests
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return handler(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) withMetrics(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if h.metrics == nil {
		return handler(ctx, req)
	}

	start := time.Now()
	resp, err := handler(ctx, req)
	h.metrics.ObserveGRPC(info.FullMethod, status.Code(err).String(), time.Since(start))

	return resp, err
}

// withRecovery turns a handler panic into codes.Internal.
func (h *Handler) withRecovery(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error().Interface("panic", r).Str("method", info.FullMethod).Msg("recovered from panic")
			err = status.Error(codes.Internal, app.MsgServerError)
		}
	}()

	return handler(ctx, req)
}

// auth verifies the bearer token in the "authorization" metadata and stores
// the user's ID in the context. Signup and Login are exempt. Every failure
// yields the same Unauthenticated status.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	log := logger.FromContext(ctx)

	tokenString, err := utils.ParseBearerToken(metadataValue(ctx, authorizationKey))
	if err != nil {
		log.Info().Err(err).Str("method", info.FullMethod).Msg("rejected call without bearer token")
		return nil, toStatus(service.ErrUnauthenticated)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Info().Err(err).Str("method", info.FullMethod).Msg("rejected call with invalid token")
		return nil, toStatus(service.ErrUnauthenticated)
	}

	return handler(utils.WithUserID(ctx, token.UserID), req)
}
