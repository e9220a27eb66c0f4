package models

import (
	"encoding/json"
	"log"
	"time"

	"mycloth-atelier/internal/core/domain"

	"gorm.io/gorm"
)

// Product represents the products table
type Product struct {
	ID          string         `gorm:"primaryKey;size:32" json:"id"`
	Name        string         `gorm:"size:150;not null" json:"name"`
	Category    string         `gorm:"size:30;index;not null" json:"category"`
	Price       int64          `gorm:"not null" json:"price"`
	Description string         `gorm:"type:text" json:"description"`
	Image       string         `gorm:"size:500" json:"image"`
	Badges      string         `gorm:"size:255" json:"-"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	OfferPrice  *int64         `json:"offer_price,omitempty"`
	Position    uint           `gorm:"autoIncrement;uniqueIndex" json:"-"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ToDomain converts the row to a domain product
func (p *Product) ToDomain() domain.Product {
	var badges []string
	if p.Badges != "" {
		if err := json.Unmarshal([]byte(p.Badges), &badges); err != nil {
			badges = nil
		}
	}
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Category:    domain.Category(p.Category),
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		Badges:      badges,
		Stock:       p.Stock,
		OfferPrice:  p.OfferPrice,
	}
}

// ProductFromDomain converts a domain product to a row
func ProductFromDomain(p domain.Product) *Product {
	badges := ""
	if len(p.Badges) > 0 {
		raw, err := json.Marshal(p.Badges)
		if err == nil {
			badges = string(raw)
		}
	}
	return &Product{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		Badges:      badges,
		Stock:       p.Stock,
		OfferPrice:  p.OfferPrice,
	}
}

// Account represents the accounts table
type Account struct {
	ID        string         `gorm:"primaryKey;size:32" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Account) TableName() string {
	return "accounts"
}

// ToDomain converts the row to a domain account
func (a *Account) ToDomain() domain.Account {
	return domain.Account{
		User: domain.User{
			ID:    a.ID,
			Name:  a.Name,
			Email: a.Email,
			Role:  domain.Role(a.Role),
		},
		PasswordHash: a.Password,
	}
}

// AccountFromDomain converts a domain account to a row
func AccountFromDomain(a domain.Account) *Account {
	return &Account{
		ID:       a.ID,
		Name:     a.Name,
		Email:    a.Email,
		Password: a.PasswordHash,
		Role:     string(a.Role),
	}
}

// StaffMember represents the staff_members table
type StaffMember struct {
	ID        string         `gorm:"primaryKey;size:32" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Role      string         `gorm:"size:30;not null" json:"role"`
	JoinedAt  string         `gorm:"size:20;not null" json:"joined_at"`
	Status    string         `gorm:"size:20;default:'Active'" json:"status"`
	Position  uint           `gorm:"autoIncrement;uniqueIndex" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (StaffMember) TableName() string {
	return "staff_members"
}

// ToDomain converts the row to a domain staff member
func (s *StaffMember) ToDomain() domain.StaffMember {
	return domain.StaffMember{
		ID:       s.ID,
		Name:     s.Name,
		Email:    s.Email,
		Role:     s.Role,
		JoinedAt: s.JoinedAt,
		Status:   s.Status,
	}
}

// StaffFromDomain converts a domain staff member to a row
func StaffFromDomain(s domain.StaffMember) *StaffMember {
	return &StaffMember{
		ID:       s.ID,
		Name:     s.Name,
		Email:    s.Email,
		Role:     s.Role,
		JoinedAt: s.JoinedAt,
		Status:   s.Status,
	}
}

// RevokedToken represents the revoked_tokens table (logout tombstones)
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TokenHash string    `gorm:"size:255;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}

func (rt *RevokedToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// AutoMigrate runs database migrations for all tables
func AutoMigrate(db *gorm.DB) error {
	log.Println("🔄 Running database migrations...")

	err := db.AutoMigrate(
		&Product{},
		&Account{},
		&StaffMember{},
		&RevokedToken{},
	)
	if err != nil {
		return err
	}

	log.Println("✅ Database migrations completed")
	return nil
}
