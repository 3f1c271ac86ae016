package repositories

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Pranav210905/fin/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCredentialNotFound = errors.New("credential not found")
	ErrUsernameTaken      = errors.New("username already registered")
)

// CredentialRepository stores local account secrets. Usernames are matched
// case-insensitively.
type CredentialRepository interface {
	CreateCredential(ctx context.Context, cred *models.Credential) error
	GetCredentialByUsername(ctx context.Context, username string) (*models.Credential, error)
	DeleteCredential(ctx context.Context, username string) error
}

type memoryCredentialRepository struct {
	mu    sync.RWMutex
	byKey map[string]models.Credential
}

func NewMemoryCredentialRepository() CredentialRepository {
	return &memoryCredentialRepository{byKey: make(map[string]models.Credential)}
}

func (r *memoryCredentialRepository) CreateCredential(_ context.Context, cred *models.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(cred.Username)
	if _, ok := r.byKey[key]; ok {
		return ErrUsernameTaken
	}
	r.byKey[key] = *cred
	return nil
}

func (r *memoryCredentialRepository) GetCredentialByUsername(_ context.Context, username string) (*models.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cred, ok := r.byKey[strings.ToLower(username)]
	if !ok {
		return nil, ErrCredentialNotFound
	}
	return &cred, nil
}

func (r *memoryCredentialRepository) DeleteCredential(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(username)
	if _, ok := r.byKey[key]; !ok {
		return ErrCredentialNotFound
	}
	delete(r.byKey, key)
	return nil
}

type postgresCredentialRepository struct {
	db *gorm.DB
}

func NewPostgresCredentialRepository(db *gorm.DB) CredentialRepository {
	return &postgresCredentialRepository{db: db}
}

func (r *postgresCredentialRepository) CreateCredential(ctx context.Context, cred *models.Credential) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Credential{}).
		Where("LOWER(username) = LOWER(?)", cred.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameTaken
	}
	return r.db.WithContext(ctx).Create(cred).Error
}

func (r *postgresCredentialRepository) GetCredentialByUsername(ctx context.Context, username string) (*models.Credential, error) {
	var cred models.Credential
	err := r.db.WithContext(ctx).Where("LOWER(username) = LOWER(?)", username).First(&cred).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredentialNotFound
		}
		return nil, err
	}
	return &cred, nil
}

func (r *postgresCredentialRepository) DeleteCredential(ctx context.Context, username string) error {
	result := r.db.WithContext(ctx).Where("LOWER(username) = LOWER(?)", username).Delete(&models.Credential{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCredentialNotFound
	}
	return nil
}
