package repositories

import (
	"context"
	"errors"
	"log"

	"mycloth-atelier/internal/adapters/persistence/models"
	"mycloth-atelier/internal/core/domain"
	"mycloth-atelier/internal/pkg/ids"

	"gorm.io/gorm"
)

// productRepository implements ProductRepository over MySQL
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// List returns all products in insertion order. The position sequence
// is assigned on insert, so ordering by it survives batch seeding
// where every row shares a creation timestamp.
func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(rows))
	for i := range rows {
		products = append(products, rows[i].ToDomain())
	}
	return products, nil
}

// GetByID gets a product by ID
func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var row models.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	product := row.ToDomain()
	return &product, nil
}

// Create inserts a product, assigning a server id when none is given
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	if product.ID == "" {
		product.ID = ids.NewRecordID()
	}
	return r.db.WithContext(ctx).Create(models.ProductFromDomain(*product)).Error
}

// Update overwrites an existing product
func (r *productRepository) Update(ctx context.Context, product domain.Product) error {
	row := models.ProductFromDomain(product)
	result := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", product.ID).
		Select("Name", "Category", "Price", "Description", "Image", "Badges", "Stock", "OfferPrice").
		Updates(row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete soft deletes a product. Deleting an absent id is a no-op.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error
}

// Count returns the number of products
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}

// SeedIfEmpty inserts the given products only when the table is empty
func (r *productRepository) SeedIfEmpty(ctx context.Context, products []domain.Product) error {
	count, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("⏭️  Products already seeded (%d rows), skipping", count)
		return nil
	}

	rows := make([]*models.Product, 0, len(products))
	for _, p := range products {
		rows = append(rows, models.ProductFromDomain(p))
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d products", len(rows))
	return nil
}
