package repositories

import (
	"context"
	"errors"
	"time"

	"mycloth-atelier/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// tokenRepository implements TokenRepository over MySQL
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// Revoke records a logout tombstone for the token hash
func (r *tokenRepository) Revoke(ctx context.Context, tokenHash string, expiresAtUnix int64) error {
	row := &models.RevokedToken{
		TokenHash: tokenHash,
		ExpiresAt: time.Unix(expiresAtUnix, 0),
	}
	err := r.db.WithContext(ctx).Create(row).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		// Already revoked, logout is idempotent
		return nil
	}
	return err
}

// IsRevoked checks whether the token hash has a tombstone
func (r *tokenRepository) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RevokedToken{}).
		Where("token_hash = ?", tokenHash).Count(&count).Error
	return count > 0, err
}

// DeleteExpired purges tombstones past their token expiry
func (r *tokenRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.RevokedToken{}).Error
}
