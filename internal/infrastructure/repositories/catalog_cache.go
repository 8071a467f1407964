package repositories

import (
	"context"
	"encoding/json"
	"time"

	"motor-kita.backend/internal/domain/repositories"
	"motor-kita.backend/pkg/redis"
)

const catalogCacheTTL = 10 * time.Minute

// cachedCatalogRepo decorates a CatalogRepository with a redis cache.
// Reference data changes rarely; a stale window of a few minutes is fine.
type cachedCatalogRepo struct {
	inner repositories.CatalogRepository
}

// NewCachedCatalogRepository wraps a catalog repository with redis caching
func NewCachedCatalogRepository(inner repositories.CatalogRepository) repositories.CatalogRepository {
	return &cachedCatalogRepo{inner: inner}
}

func (r *cachedCatalogRepo) ListBrands(ctx context.Context) ([]string, error) {
	if names, ok := r.cached(ctx, "catalog:brands"); ok {
		return names, nil
	}
	names, err := r.inner.ListBrands(ctx)
	if err != nil {
		return nil, err
	}
	r.cache(ctx, "catalog:brands", names)
	return names, nil
}

func (r *cachedCatalogRepo) ListModels(ctx context.Context, brand string) ([]string, error) {
	key := "catalog:models:" + brand
	if names, ok := r.cached(ctx, key); ok {
		return names, nil
	}
	names, err := r.inner.ListModels(ctx, brand)
	if err != nil {
		return nil, err
	}
	r.cache(ctx, key, names)
	return names, nil
}

func (r *cachedCatalogRepo) cached(ctx context.Context, key string) ([]string, bool) {
	raw, err := redis.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, false
	}
	return names, true
}

// cache is best effort: a cold or unreachable cache only costs a DB read.
func (r *cachedCatalogRepo) cache(ctx context.Context, key string, names []string) {
	raw, err := json.Marshal(names)
	if err != nil {
		return
	}
	_ = redis.Set(ctx, key, string(raw), catalogCacheTTL)
}
