package repositories

import (
	"context"
	"errors"
	"strings"

	"mycloth-atelier/internal/adapters/persistence/models"
	"mycloth-atelier/internal/core/domain"
	"mycloth-atelier/internal/pkg/ids"

	"gorm.io/gorm"
)

// userRepository implements UserRepository over MySQL
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByEmail gets an account by email (case-insensitive)
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var row models.Account
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	account := row.ToDomain()
	return &account, nil
}

// Create inserts an account, assigning a server id when none is given
func (r *userRepository) Create(ctx context.Context, account *domain.Account) error {
	if account.ID == "" {
		account.ID = ids.NewRecordID()
	}
	account.Email = strings.ToLower(account.Email)
	return r.db.WithContext(ctx).Create(models.AccountFromDomain(*account)).Error
}

// ExistsByEmail checks if an account with this email exists
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("email = ?", strings.ToLower(email)).Count(&count).Error
	return count > 0, err
}
