package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/morerealm/vrlens-api/internal/models"
	"github.com/morerealm/vrlens-api/internal/repository"
	"github.com/morerealm/vrlens-api/internal/utils"
)

// Client-facing validation messages. The storefront frontend matches on
// these strings, so they are part of the wire contract.
var (
	ErrMissingFields = utils.NewValidationError("Name and base price are required")
	ErrInvalidPrice  = utils.NewValidationError("Base price must be a valid positive number")
)

// ProductStore is the persistence surface the catalog needs.
// *repository.ProductRepository satisfies it.
type ProductStore interface {
	Create(ctx context.Context, params repository.CreateProductParams) (*models.Product, error)
	ListActive(ctx context.Context) ([]models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	CountByStatus(ctx context.Context) (*models.CatalogStats, error)
}

// ListingCache caches the public product listing. May be nil when the
// service runs without Redis (tests, seed tool).
type ListingCache interface {
	GetListing(ctx context.Context) ([]models.Product, bool)
	SetListing(ctx context.Context, products []models.Product)
	Invalidate(ctx context.Context)
}

// CatalogService is the only layer where catalog business rules live:
// input validation, creation defaults, and active/inactive visibility.
type CatalogService struct {
	store ProductStore
	cache ListingCache
}

// NewCatalogService constructs a CatalogService. cache may be nil.
func NewCatalogService(store ProductStore, cache ListingCache) *CatalogService {
	return &CatalogService{store: store, cache: cache}
}

// CreateProductInput is the validated create request shape.
// BasePrice is a pointer so that an absent field is distinguishable from 0.
type CreateProductInput struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"basePrice"`
	Images      []string `json:"images"`
}

// CreateProduct validates input, applies creation defaults, and persists a
// new product. New products are always created active; there is no caller
// override.
func (s *CatalogService) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.BasePrice == nil {
		return nil, ErrMissingFields
	}

	price := *input.BasePrice
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, ErrInvalidPrice
	}

	// Empty description normalizes to NULL.
	description := input.Description
	if description != nil && strings.TrimSpace(*description) == "" {
		description = nil
	}

	product, err := s.store.Create(ctx, repository.CreateProductParams{
		Name:        name,
		Description: description,
		BasePrice:   price,
		Images:      input.Images,
		Active:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	log.Info().
		Str("product_id", product.ID).
		Str("name", product.Name).
		Float64("base_price", product.BasePrice).
		Msg("product created")

	return product, nil
}

// ListPublicProducts returns all active products, newest first.
func (s *CatalogService) ListPublicProducts(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.GetListing(ctx); ok {
			return products, nil
		}
	}

	products, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list public products: %w", err)
	}

	if s.cache != nil {
		s.cache.SetListing(ctx, products)
	}
	return products, nil
}

// GetPublicProductByID returns an active product by id. Inactive products
// are indistinguishable from absent ones to customer-facing callers.
func (s *CatalogService) GetPublicProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			return nil, utils.ErrProductNotFound
		}
		return nil, fmt.Errorf("get public product %s: %w", id, err)
	}
	if !product.Active {
		return nil, utils.ErrProductNotFound
	}
	return product, nil
}

// ListAllProductsForAdmin returns every product including inactive ones.
func (s *CatalogService) ListAllProductsForAdmin(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products for admin: %w", err)
	}
	return products, nil
}

// AdminStats returns total/active/inactive counts for the admin dashboard.
func (s *CatalogService) AdminStats(ctx context.Context) (*models.CatalogStats, error) {
	stats, err := s.store.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog stats: %w", err)
	}
	return stats, nil
}
