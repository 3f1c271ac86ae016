package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/Pranav210905/fin/internal/models"
)

// ErrProfileNotFound is returned by every ProfileRepository backend when no
// document exists for the requested id.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository is the profile document store consulted once per sign-in.
type ProfileRepository interface {
	GetProfile(ctx context.Context, id string) (*models.User, error)
	SaveProfile(ctx context.Context, user *models.User) error
}

// MemoryProfileRepository keeps profile documents in process memory
type MemoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]models.User
}

// NewMemoryProfileRepository creates a MemoryProfileRepository holding users
func NewMemoryProfileRepository(users ...models.User) *MemoryProfileRepository {
	r := &MemoryProfileRepository{profiles: make(map[string]models.User, len(users))}
	for _, u := range users {
		r.profiles[u.ID] = u.Clone()
	}
	return r
}

func (r *MemoryProfileRepository) GetProfile(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.profiles[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	u = u.Clone()
	return &u, nil
}

func (r *MemoryProfileRepository) SaveProfile(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[user.ID] = user.Clone()
	return nil
}
