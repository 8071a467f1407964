package repositories

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"motor-kita.backend/pkg/redis"
)

type countingCatalog struct {
	brands int32
	models int32
}

func (c *countingCatalog) ListBrands(context.Context) ([]string, error) {
	atomic.AddInt32(&c.brands, 1)
	return []string{"Honda", "Perodua"}, nil
}

func (c *countingCatalog) ListModels(context.Context, string) ([]string, error) {
	atomic.AddInt32(&c.models, 1)
	return []string{"City", "Civic"}, nil
}

func TestCachedCatalogRepository(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	defer srv.Close()

	cli := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	redis.SetClient(cli)
	defer cli.Close()

	inner := &countingCatalog{}
	repo := NewCachedCatalogRepository(inner)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		brands, err := repo.ListBrands(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"Honda", "Perodua"}, brands)
	}
	require.EqualValues(t, 1, inner.brands)

	for i := 0; i < 2; i++ {
		models, err := repo.ListModels(ctx, "Honda")
		require.NoError(t, err)
		require.Equal(t, []string{"City", "Civic"}, models)
	}
	require.EqualValues(t, 1, inner.models)

	// Cache expiry falls back to the inner repository.
	srv.FastForward(catalogCacheTTL * 2)
	_, err = repo.ListBrands(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, inner.brands)
}
