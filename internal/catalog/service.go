package catalog

import (
	"context"
	"errors"
)

const listCacheKey = "catalog:products"

// Service orchestrates product lookups and response caching.
type Service struct {
	repo  Repository
	cache *Cache
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Repo  Repository
	Cache *Cache
}

// NewService validates configuration and constructs a Service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Repo == nil {
		return nil, errors.New("catalog: repository is required")
	}
	return &Service{repo: cfg.Repo, cache: cfg.Cache}, nil
}

// List returns every product, served from cache when possible.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	var cached []Product
	if hit, err := s.cache.GetJSON(ctx, listCacheKey, &cached); err == nil && hit {
		return cached, nil
	}
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, listCacheKey, products)
	return products, nil
}

// Get returns a single product by SKU.
func (s *Service) Get(ctx context.Context, sku int64) (Product, error) {
	return s.repo.GetProduct(ctx, sku)
}
