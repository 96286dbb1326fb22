package catalog

import (
	"context"

	"swagshop/internal/models"
	"swagshop/internal/pricing"
)

// Service exposes the catalog and shipping configuration.
type Service interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	ListShippingOptions(ctx context.Context) ([]models.ShippingOption, error)

	// SurchargeTable builds the pricing lookup from the selectable options.
	SurchargeTable(ctx context.Context) (pricing.SurchargeTable, error)

	// Admin operations; both invalidate the catalog cache.
	CreateProduct(ctx context.Context, product *models.Product) error
	CreateShippingOption(ctx context.Context, option *models.ShippingOption) error
}

// CacheOperator defines the caching operations needed by the catalog.
type CacheOperator interface {
	GetProducts(ctx context.Context) ([]models.Product, bool, error)
	CacheProducts(ctx context.Context, products []models.Product) error
	GetShippingOptions(ctx context.Context) ([]models.ShippingOption, bool, error)
	CacheShippingOptions(ctx context.Context, options []models.ShippingOption) error
	InvalidateCatalog(ctx context.Context) error
}
