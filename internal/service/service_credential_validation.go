package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// CredentialValidationService checks create input before it reaches the
// wrapped service. Update is passed through unvalidated: a full replacement
// may legitimately clear fields.
type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validators.NewCredentialValidator(),
	}
}

func (v *CredentialValidationService) List(ctx context.Context) ([]models.Credential, error) {
	return v.inner.List(ctx)
}

func (v *CredentialValidationService) Create(ctx context.Context, input models.CredentialInput) (models.Credential, error) {
	if _, err := callerID(ctx); err != nil {
		return models.Credential{}, err
	}

	if err := v.validator.Validate(ctx, input); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "CredentialValidationService.Create").
			Msg("credential rejected")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return v.inner.Create(ctx, input)
}

func (v *CredentialValidationService) Update(ctx context.Context, id string, input models.CredentialInput) (models.Credential, error) {
	return v.inner.Update(ctx, id, input)
}

func (v *CredentialValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *CredentialValidationService) Wrap(wrapped CredentialService) CredentialService {
	v.inner = wrapped
	return v
}
