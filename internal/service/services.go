package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type Services struct {
	AuthService       AuthService
	CredentialService CredentialService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	credentialService := NewCredentialValidationService().
		Wrap(NewCredentialService(storages.CredentialRepository, logger))

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		CredentialService: credentialService,
		AppInfoService:    appInfoService,
	}, nil
}
