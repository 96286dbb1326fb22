package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"swagshop/internal/models"
	"swagshop/internal/pricing"
	"swagshop/internal/repositories"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

type mockShippingRepo struct {
	mock.Mock
}

func (m *mockShippingRepo) List(ctx context.Context) ([]models.ShippingOption, error) {
	args := m.Called(ctx)
	if o, ok := args.Get(0).([]models.ShippingOption); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShippingRepo) GetByID(ctx context.Context, id string) (*models.ShippingOption, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*models.ShippingOption); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShippingRepo) Create(ctx context.Context, option *models.ShippingOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) GetProducts(ctx context.Context) ([]models.Product, bool, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *mockCache) CacheProducts(ctx context.Context, products []models.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *mockCache) GetShippingOptions(ctx context.Context) ([]models.ShippingOption, bool, error) {
	args := m.Called(ctx)
	if o, ok := args.Get(0).([]models.ShippingOption); ok {
		return o, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *mockCache) CacheShippingOptions(ctx context.Context, options []models.ShippingOption) error {
	args := m.Called(ctx, options)
	return args.Error(0)
}

func (m *mockCache) InvalidateCatalog(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func sampleOptions() []models.ShippingOption {
	return []models.ShippingOption{
		{ID: "shipping-001", Label: "Free shipping", Surcharge: decimal.RequireFromString("0.00")},
		{ID: "shipping-002", Label: "Standard", Surcharge: decimal.RequireFromString("0.05")},
	}
}

func TestListProductsCacheHit(t *testing.T) {
	products := []models.Product{{ID: 1, SKU: "TSHIRT-001", Title: "T-Shirt"}}

	productRepo := new(mockProductRepo)
	shippingRepo := new(mockShippingRepo)
	cache := new(mockCache)
	cache.On("GetProducts", mock.Anything).Return(products, true, nil)

	svc := NewService(productRepo, shippingRepo, cache)
	got, err := svc.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, products, got)
	productRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestListProductsCacheMissFallsThrough(t *testing.T) {
	products := []models.Product{{ID: 1, SKU: "TSHIRT-001", Title: "T-Shirt"}}

	productRepo := new(mockProductRepo)
	shippingRepo := new(mockShippingRepo)
	cache := new(mockCache)
	cache.On("GetProducts", mock.Anything).Return(nil, false, nil)
	productRepo.On("List", mock.Anything).Return(products, nil)
	cache.On("CacheProducts", mock.Anything, products).Return(nil)

	svc := NewService(productRepo, shippingRepo, cache)
	got, err := svc.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, products, got)
	cache.AssertCalled(t, "CacheProducts", mock.Anything, products)
}

func TestListProductsCacheWriteFailureIsNotFatal(t *testing.T) {
	products := []models.Product{{ID: 1, SKU: "TSHIRT-001"}}

	productRepo := new(mockProductRepo)
	shippingRepo := new(mockShippingRepo)
	cache := new(mockCache)
	cache.On("GetProducts", mock.Anything).Return(nil, false, nil)
	productRepo.On("List", mock.Anything).Return(products, nil)
	cache.On("CacheProducts", mock.Anything, products).Return(errors.New("redis down"))

	svc := NewService(productRepo, shippingRepo, cache)
	got, err := svc.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestGetProductNotFound(t *testing.T) {
	productRepo := new(mockProductRepo)
	shippingRepo := new(mockShippingRepo)
	cache := new(mockCache)
	productRepo.On("GetByID", mock.Anything, uint(42)).Return(nil, repositories.ErrProductNotFound)

	svc := NewService(productRepo, shippingRepo, cache)
	_, err := svc.GetProduct(context.Background(), 42)

	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestSurchargeTable(t *testing.T) {
	productRepo := new(mockProductRepo)
	shippingRepo := new(mockShippingRepo)
	cache := new(mockCache)
	cache.On("GetShippingOptions", mock.Anything).Return(sampleOptions(), true, nil)

	svc := NewService(productRepo, shippingRepo, cache)
	table, err := svc.SurchargeTable(context.Background())

	require.NoError(t, err)
	surcharge, err := table.Surcharge("shipping-002")
	require.NoError(t, err)
	assert.True(t, surcharge.Equal(decimal.RequireFromString("0.05")))
}

func TestCreateShippingOptionRejectsNegativeSurcharge(t *testing.T) {
	productRepo := new(mockProductRepo)
	shippingRepo := new(mockShippingRepo)
	cache := new(mockCache)

	svc := NewService(productRepo, shippingRepo, cache)
	err := svc.CreateShippingOption(context.Background(), &models.ShippingOption{
		ID:        "shipping-004",
		Label:     "Broken",
		Surcharge: decimal.RequireFromString("-1.00"),
	})

	assert.ErrorIs(t, err, pricing.ErrNegativeSurcharge)
	shippingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProductInvalidatesCache(t *testing.T) {
	productRepo := new(mockProductRepo)
	shippingRepo := new(mockShippingRepo)
	cache := new(mockCache)
	product := &models.Product{SKU: "MUG-001", Title: "Mug", Price: decimal.RequireFromString("14.99")}
	productRepo.On("Create", mock.Anything, product).Return(nil)
	cache.On("InvalidateCatalog", mock.Anything).Return(nil)

	svc := NewService(productRepo, shippingRepo, cache)
	err := svc.CreateProduct(context.Background(), product)

	require.NoError(t, err)
	cache.AssertCalled(t, "InvalidateCatalog", mock.Anything)
}
