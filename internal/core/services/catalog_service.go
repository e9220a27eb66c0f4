package services

import (
	"context"
	"log"
	"sort"
	"strings"

	"mycloth-atelier/internal/adapters/persistence/repositories"
	"mycloth-atelier/internal/core/domain"
)

// CatalogService handles inventory and storefront view derivation
type CatalogService struct {
	productRepo repositories.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repositories.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// ProductInput represents create/update input for a product
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       int64    `json:"price" validate:"required,min=1"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Badges      []string `json:"badges"`
	Stock       int      `json:"stock" validate:"min=0"`
	OfferPrice  *int64   `json:"offerPrice"`
}

// InitInventory seeds the built-in catalog when the store is empty.
// Safe to call on every startup.
func (s *CatalogService) InitInventory(ctx context.Context) error {
	return s.productRepo.SeedIfEmpty(ctx, domain.SeedCatalog())
}

// GetProducts returns the full catalog. A failed read falls back to the
// built-in seed so the storefront always has something to show.
func (s *CatalogService) GetProducts(ctx context.Context) []domain.Product {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		log.Printf("⚠️ Product read failed, serving built-in catalog: %v", err)
		return domain.SeedCatalog()
	}
	return products
}

// GetProduct returns a single product by id
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// AddProduct validates and stores a new product
func (s *CatalogService) AddProduct(ctx context.Context, input *ProductInput) (*domain.Product, error) {
	// 1. Validate input
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	// 2. Store; id assignment belongs to the repository
	product := domain.Product{
		Name:        strings.TrimSpace(input.Name),
		Category:    domain.Category(input.Category),
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		Badges:      input.Badges,
		Stock:       input.Stock,
		OfferPrice:  input.OfferPrice,
	}
	if err := s.productRepo.Create(ctx, &product); err != nil {
		return nil, err
	}

	log.Printf("✅ Product added: %s (%s)", product.Name, product.ID)
	return &product, nil
}

// UpdateProduct overwrites an existing product
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input *ProductInput) (*domain.Product, error) {
	// 1. Validate input
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	// 2. Overwrite; absent ids surface as not found
	product := domain.Product{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Category:    domain.Category(input.Category),
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		Badges:      input.Badges,
		Stock:       input.Stock,
		OfferPrice:  input.OfferPrice,
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return &product, nil
}

// DeleteProduct removes a product from the catalog
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

func validateProductInput(input *ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domain.ErrInvalidInput
	}
	if !domain.IsValidCategory(domain.Category(input.Category)) {
		return domain.ErrInvalidInput
	}
	if input.Price <= 0 || input.Stock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Derive builds the storefront view from the catalog. Pure: the input
// slice is never mutated, sorting happens on a fresh copy.
func (s *CatalogService) Derive(products []domain.Product, query string, category domain.Category, sortBy domain.SortOption) []domain.Product {
	// 1. Text filter on name and description, case-insensitive substring
	filtered := make([]domain.Product, 0, len(products))
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, p := range products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		// 2. Category filter, "All" passes everything through
		if category != "" && category != domain.CategoryAll && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}

	// 3. Stable sort so equal keys keep catalog order
	switch sortBy {
	case domain.SortPriceLowHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case domain.SortPriceHighLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case domain.SortNameAZ:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	}

	return filtered
}
