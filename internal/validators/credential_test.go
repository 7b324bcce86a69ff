package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func validInput() models.CredentialInput {
	return models.CredentialInput{
		Website:  "github.com",
		Username: "a@x.com",
		Password: "p1",
	}
}

func TestNewCredentialValidator(t *testing.T) {
	require.NotNil(t, NewCredentialValidator())
}

func TestCredentialValidator_Validate(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(in *models.CredentialInput)
		wantErr error
	}{
		{"valid", func(in *models.CredentialInput) {}, nil},
		{"valid without notes", func(in *models.CredentialInput) { in.Notes = "" }, nil},
		{"empty website", func(in *models.CredentialInput) { in.Website = "" }, ErrEmptyWebsite},
		{"empty username", func(in *models.CredentialInput) { in.Username = "" }, ErrEmptyUsername},
		{"empty password", func(in *models.CredentialInput) { in.Password = "" }, ErrEmptyPassword},
		{"whitespace is a value", func(in *models.CredentialInput) { in.Password = "  " }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := v.Validate(ctx, in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCredentialValidator_Pointer(t *testing.T) {
	v := NewCredentialValidator()

	in := validInput()
	assert.NoError(t, v.Validate(context.Background(), &in))

	var nilInput *models.CredentialInput
	assert.ErrorIs(t, v.Validate(context.Background(), nilInput), ErrUnsupportedType)
}

func TestCredentialValidator_FieldScoping(t *testing.T) {
	v := NewCredentialValidator()
	in := models.CredentialInput{Website: "github.com"}

	assert.NoError(t, v.Validate(context.Background(), in, FieldWebsite))
	assert.ErrorIs(t, v.Validate(context.Background(), in, FieldWebsite, FieldUsername), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(context.Background(), in, "notes"), ErrUnknownField)
}

func TestCredentialValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewCredentialValidator().Validate(context.Background(), "string"), ErrUnsupportedType)
}
