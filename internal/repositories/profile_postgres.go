package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pranav210905/fin/internal/models"
	"gorm.io/gorm"
)

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// GetProfile retrieves a profile by ID from PostgreSQL
func (r *PostgresProfileRepository) GetProfile(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile %s: %w", id, err)
	}
	return &user, nil
}

// SaveProfile inserts or replaces a profile in PostgreSQL
func (r *PostgresProfileRepository) SaveProfile(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
