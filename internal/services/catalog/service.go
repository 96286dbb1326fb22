package catalog

import (
	"context"
	"fmt"
	"log"

	"swagshop/internal/models"
	"swagshop/internal/pricing"
	"swagshop/internal/repositories"
)

type service struct {
	products repositories.ProductRepository
	shipping repositories.ShippingOptionRepository
	cache    CacheOperator
}

// NewService creates a new catalog service
func NewService(
	products repositories.ProductRepository,
	shipping repositories.ShippingOptionRepository,
	cache CacheOperator,
) Service {
	if products == nil {
		panic("product repository is required")
	}
	if shipping == nil {
		panic("shipping option repository is required")
	}
	if cache == nil {
		panic("cache is required")
	}

	return &service{
		products: products,
		shipping: shipping,
		cache:    cache,
	}
}

func (s *service) ListProducts(ctx context.Context) ([]models.Product, error) {
	// Try cache first
	if products, found, err := s.cache.GetProducts(ctx); err == nil && found {
		return products, nil
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if err := s.cache.CacheProducts(ctx, products); err != nil {
		// Log cache error but don't fail the request
		log.Printf("failed to cache products: %v", err)
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if err == repositories.ErrProductNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *service) ListShippingOptions(ctx context.Context) ([]models.ShippingOption, error) {
	if options, found, err := s.cache.GetShippingOptions(ctx); err == nil && found {
		return options, nil
	}

	options, err := s.shipping.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipping options: %w", err)
	}

	if err := s.cache.CacheShippingOptions(ctx, options); err != nil {
		log.Printf("failed to cache shipping options: %v", err)
	}
	return options, nil
}

func (s *service) SurchargeTable(ctx context.Context) (pricing.SurchargeTable, error) {
	options, err := s.ListShippingOptions(ctx)
	if err != nil {
		return nil, err
	}
	return pricing.NewSurchargeTable(options)
}

func (s *service) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.products.Create(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		log.Printf("failed to invalidate catalog cache: %v", err)
	}
	return nil
}

func (s *service) CreateShippingOption(ctx context.Context, option *models.ShippingOption) error {
	if option.Surcharge.IsNegative() {
		return pricing.ErrNegativeSurcharge
	}

	if err := s.shipping.Create(ctx, option); err != nil {
		return fmt.Errorf("failed to create shipping option: %w", err)
	}

	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		log.Printf("failed to invalidate catalog cache: %v", err)
	}
	return nil
}
