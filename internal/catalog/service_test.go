package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-pos/internal/catalog"
	"github.com/noah-isme/backend-pos/internal/repo"
	"github.com/noah-isme/backend-pos/internal/units"
)

type countingRepo struct {
	inner catalog.Repository
	lists int
}

func (c *countingRepo) GetProduct(ctx context.Context, sku int64) (catalog.Product, error) {
	return c.inner.GetProduct(ctx, sku)
}

func (c *countingRepo) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	c.lists++
	return c.inner.ListProducts(ctx)
}

func TestNewServiceRequiresRepo(t *testing.T) {
	_, err := catalog.NewService(catalog.ServiceConfig{})
	require.Error(t, err)
}

func TestListServesFromCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	counting := &countingRepo{inner: repo.SeedProducts()}
	svc, err := catalog.NewService(catalog.ServiceConfig{
		Repo:  counting,
		Cache: catalog.NewCache(client, time.Minute),
	})
	require.NoError(t, err)

	ctx := context.Background()
	first, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 5)
	require.Equal(t, 1, counting.lists)

	second, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, second, 5)
	require.Equal(t, 1, counting.lists, "second list should hit the cache")
	require.Equal(t, first[0].SKU, second[0].SKU)
	require.True(t, first[0].UnitPrice.Equal(second[0].UnitPrice))
}

func TestListWithoutCache(t *testing.T) {
	counting := &countingRepo{inner: repo.SeedProducts()}
	svc, err := catalog.NewService(catalog.ServiceConfig{Repo: counting})
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		products, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 5)
	}
	require.Equal(t, 2, counting.lists)
}

func TestProductEndpoints(t *testing.T) {
	svc, err := catalog.NewService(catalog.ServiceConfig{Repo: repo.SeedProducts()})
	require.NoError(t, err)
	h := &catalog.Handler{Svc: svc}

	r := chi.NewRouter()
	r.Get("/api/v1/products", h.Products)
	r.Get("/api/v1/products/{sku}", h.ProductDetail)

	t.Run("list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []catalog.Product `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 5)
	})

	t.Run("detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/4", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data catalog.Product `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Milk", resp.Data.Name)
		require.Equal(t, units.Litre, resp.Data.Unit)
		require.True(t, resp.Data.UnitPrice.Equal(decimal.RequireFromString("1.25")))
	})

	t.Run("unknown sku", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/999", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
	})

	t.Run("bad sku", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
