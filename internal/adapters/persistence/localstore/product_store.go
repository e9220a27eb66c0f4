package localstore

import (
	"context"
	"encoding/json"
	"log"

	"mycloth-atelier/internal/adapters/persistence/repositories"
	"mycloth-atelier/internal/core/domain"
	"mycloth-atelier/internal/pkg/ids"
)

// productStore implements ProductRepository over bbolt
type productStore struct {
	store *Store
}

// NewProductStore creates a product repository backed by the local store
func NewProductStore(store *Store) repositories.ProductRepository {
	return &productStore{store: store}
}

// List returns all products in insertion order
func (s *productStore) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.store.readList(bucketCollections, keyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID gets a product by ID
func (s *productStore) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// Create appends a product, assigning a random id when none is given
func (s *productStore) Create(ctx context.Context, product *domain.Product) error {
	if product.ID == "" {
		product.ID = ids.NewLocalID()
	}
	return s.store.update(bucketCollections, keyProducts, func(raw []byte) ([]byte, error) {
		var products []domain.Product
		if raw != nil {
			if err := json.Unmarshal(raw, &products); err != nil {
				return nil, err
			}
		}
		products = append(products, *product)
		return json.Marshal(products)
	})
}

// Update replaces the product with the same id, preserving position
func (s *productStore) Update(ctx context.Context, product domain.Product) error {
	return s.store.update(bucketCollections, keyProducts, func(raw []byte) ([]byte, error) {
		var products []domain.Product
		if raw != nil {
			if err := json.Unmarshal(raw, &products); err != nil {
				return nil, err
			}
		}
		for i := range products {
			if products[i].ID == product.ID {
				products[i] = product
				return json.Marshal(products)
			}
		}
		return nil, domain.ErrProductNotFound
	})
}

// Delete removes the product with the given id. Deleting an absent id
// is a no-op.
func (s *productStore) Delete(ctx context.Context, id string) error {
	return s.store.update(bucketCollections, keyProducts, func(raw []byte) ([]byte, error) {
		var products []domain.Product
		if raw != nil {
			if err := json.Unmarshal(raw, &products); err != nil {
				return nil, err
			}
		}
		for i := range products {
			if products[i].ID == id {
				products = append(products[:i], products[i+1:]...)
				break
			}
		}
		return json.Marshal(products)
	})
}

// Count returns the number of products
func (s *productStore) Count(ctx context.Context) (int64, error) {
	products, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(products)), nil
}

// SeedIfEmpty writes the given products only when the collection is empty
func (s *productStore) SeedIfEmpty(ctx context.Context, products []domain.Product) error {
	return s.store.update(bucketCollections, keyProducts, func(raw []byte) ([]byte, error) {
		if raw != nil {
			var existing []domain.Product
			if err := json.Unmarshal(raw, &existing); err != nil {
				return nil, err
			}
			if len(existing) > 0 {
				log.Printf("⏭️  Products already seeded (%d items), skipping", len(existing))
				return raw, nil
			}
		}
		log.Printf("✅ Seeded %d products", len(products))
		return json.Marshal(products)
	})
}
