package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// memoryCredentialRepository keeps credential records in process memory.
// A single RWMutex makes every method atomic, so the version checks in
// Replace and Delete are compare-and-swap operations.
type memoryCredentialRepository struct {
	mu      sync.RWMutex
	records map[string]models.Credential
	ids     IDGenerator
	now     func() time.Time
}

// NewMemoryCredentialRepository returns an empty in-memory [CredentialRepository].
func NewMemoryCredentialRepository(ids IDGenerator) CredentialRepository {
	return &memoryCredentialRepository{
		records: make(map[string]models.Credential),
		ids:     ids,
		now:     time.Now,
	}
}

func (r *memoryCredentialRepository) Insert(ctx context.Context, credential models.Credential) (models.Credential, error) {
	if err := ctx.Err(); err != nil {
		return models.Credential{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	credential.ID = r.ids.Generate()
	credential.CreatedAt = now
	credential.UpdatedAt = now
	credential.Version = 1
	r.records[credential.ID] = credential

	return credential, nil
}

func (r *memoryCredentialRepository) FindByID(ctx context.Context, id string) (models.Credential, error) {
	if err := ctx.Err(); err != nil {
		return models.Credential{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	credential, ok := r.records[id]
	if !ok {
		return models.Credential{}, ErrCredentialNotFound
	}
	return credential, nil
}

func (r *memoryCredentialRepository) FindAllByOwner(ctx context.Context, ownerID int64) ([]models.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	credentials := make([]models.Credential, 0, 16)
	for _, credential := range r.records {
		if credential.OwnerID == ownerID {
			credentials = append(credentials, credential)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(credentials, func(a, b models.Credential) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	return credentials, nil
}

func (r *memoryCredentialRepository) Replace(ctx context.Context, id string, input models.CredentialInput, expectedVersion int64) (models.Credential, error) {
	if err := ctx.Err(); err != nil {
		return models.Credential{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.records[id]
	if !ok {
		return models.Credential{}, ErrCredentialNotFound
	}
	if current.Version != expectedVersion {
		return models.Credential{}, ErrVersionConflict
	}

	current.Website = input.Website
	current.Username = input.Username
	current.Password = input.Password
	current.Notes = input.Notes
	current.UpdatedAt = nextTimestamp(r.now(), current.UpdatedAt)
	current.Version++
	r.records[id] = current

	return current, nil
}

func (r *memoryCredentialRepository) Delete(ctx context.Context, id string, expectedVersion int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.records[id]
	if !ok {
		return ErrCredentialNotFound
	}
	if current.Version != expectedVersion {
		return ErrVersionConflict
	}

	delete(r.records, id)
	return nil
}
