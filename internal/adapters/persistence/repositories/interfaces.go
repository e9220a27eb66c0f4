package repositories

import (
	"context"

	"mycloth-atelier/internal/core/domain"
)

// ProductRepository defines product storage. Implemented by the GORM
// store in remote mode and the bbolt store in local mode.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	SeedIfEmpty(ctx context.Context, products []domain.Product) error
}

// UserRepository defines account storage
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// StaffRepository defines staff roster storage
type StaffRepository interface {
	List(ctx context.Context) ([]domain.StaffMember, error)
	Create(ctx context.Context, member *domain.StaffMember) error
	Delete(ctx context.Context, id string) error
}

// TokenRepository defines logout tombstone storage
type TokenRepository interface {
	Revoke(ctx context.Context, tokenHash string, expiresAtUnix int64) error
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
	DeleteExpired(ctx context.Context) error
}
