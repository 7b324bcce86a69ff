package http

import (
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
