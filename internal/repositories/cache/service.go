package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"swagshop/internal/models"
)

// Cache keys for the read-mostly catalog data. Writes are idempotent (the
// same content is refetched), so last-writer-wins is acceptable.
const (
	ProductsKey        = "catalog:products"
	ShippingOptionsKey = "catalog:shipping_options"
	sessionKeyPrefix   = "checkout:session:"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Catalog caching

func (s *CacheService) CacheProducts(ctx context.Context, products []models.Product) error {
	return s.Set(ctx, ProductsKey, products)
}

func (s *CacheService) GetProducts(ctx context.Context) ([]models.Product, bool, error) {
	var products []models.Product
	found, err := s.Get(ctx, ProductsKey, &products)
	return products, found, err
}

func (s *CacheService) CacheShippingOptions(ctx context.Context, options []models.ShippingOption) error {
	return s.Set(ctx, ShippingOptionsKey, options)
}

func (s *CacheService) GetShippingOptions(ctx context.Context) ([]models.ShippingOption, bool, error) {
	var options []models.ShippingOption
	found, err := s.Get(ctx, ShippingOptionsKey, &options)
	return options, found, err
}

// InvalidateCatalog drops the cached catalog after an admin write.
func (s *CacheService) InvalidateCatalog(ctx context.Context) error {
	return s.Delete(ctx, ProductsKey, ShippingOptionsKey)
}

// Session storage. Sessions live only in Redis: created on a successful
// readiness check, expired by TTL when abandoned, deleted when the checkout
// completes.

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *CacheService) SaveSession(ctx context.Context, session *models.CheckoutSession, ttl time.Duration) error {
	return s.SetWithTTL(ctx, sessionKey(session.ID), session, ttl)
}

func (s *CacheService) GetSession(ctx context.Context, id string) (*models.CheckoutSession, bool, error) {
	var session models.CheckoutSession
	found, err := s.Get(ctx, sessionKey(id), &session)
	if err != nil || !found {
		return nil, found, err
	}
	return &session, true, nil
}

func (s *CacheService) DeleteSession(ctx context.Context, id string) error {
	return s.Delete(ctx, sessionKey(id))
}

// HealthCheck pings Redis.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// FlushAll flushes all keys from the cache
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
