package localstore

import (
	"context"
	"encoding/json"
	"strings"

	"mycloth-atelier/internal/adapters/persistence/repositories"
	"mycloth-atelier/internal/core/domain"
	"mycloth-atelier/internal/pkg/ids"
)

// userStore implements UserRepository over bbolt
type userStore struct {
	store *Store
}

// NewUserStore creates a user repository backed by the local store
func NewUserStore(store *Store) repositories.UserRepository {
	return &userStore{store: store}
}

// GetByEmail gets an account by email (case-insensitive)
func (s *userStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var accounts []domain.Account
	if err := s.store.readList(bucketCollections, keyUsers, &accounts); err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	for i := range accounts {
		if strings.ToLower(accounts[i].Email) == email {
			return &accounts[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends an account, assigning a random id when none is given
func (s *userStore) Create(ctx context.Context, account *domain.Account) error {
	if account.ID == "" {
		account.ID = ids.NewLocalID()
	}
	account.Email = strings.ToLower(account.Email)
	return s.store.update(bucketCollections, keyUsers, func(raw []byte) ([]byte, error) {
		var accounts []domain.Account
		if raw != nil {
			if err := json.Unmarshal(raw, &accounts); err != nil {
				return nil, err
			}
		}
		accounts = append(accounts, *account)
		return json.Marshal(accounts)
	})
}

// ExistsByEmail checks if an account with this email exists
func (s *userStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if err == domain.ErrUserNotFound {
		return false, nil
	}
	return false, err
}
