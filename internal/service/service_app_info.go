package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type appInfoService struct {
	version models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService prefers the linker-injected build version and falls back
// to cfg.Version.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := buildInfo.Response(cfg.Version)
	if version.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version: version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.version
}
