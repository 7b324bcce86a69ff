package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// memoryUserRepository keeps users in process memory. It is used by the
// "memory" driver and in tests.
type memoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
	lastID  int64
	now     func() time.Time
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byEmail: make(map[string]models.User),
		now:     time.Now,
	}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return models.User{}, ErrEmailAlreadyExists
	}

	r.lastID++
	user.UserID = r.lastID
	user.CreatedAt = r.now().UTC()
	r.byEmail[user.Email] = user

	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}
