package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerrors "motor-kita.backend/internal/domain/errors"
)

type catalogStub struct {
	brandsFn func(ctx context.Context) ([]string, error)
	modelsFn func(ctx context.Context, brand string) ([]string, error)
}

func (s catalogStub) ListBrands(ctx context.Context) ([]string, error) {
	return s.brandsFn(ctx)
}

func (s catalogStub) ListModels(ctx context.Context, brand string) ([]string, error) {
	return s.modelsFn(ctx, brand)
}

func serveCatalog(h *CatalogHandler, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/catalog/brands", h.ListBrands)
	r.GET("/catalog/brands/:brand/models", h.ListModels)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCatalogHandler_ListBrands(t *testing.T) {
	h := NewCatalogHandler(catalogStub{
		brandsFn: func(context.Context) ([]string, error) {
			return []string{"Honda", "Perodua", "Proton"}, nil
		},
	})

	w := serveCatalog(h, "/catalog/brands")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Brands []string `json:"brands"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Brands) != 3 || resp.Brands[0] != "Honda" {
		t.Fatalf("unexpected brands: %v", resp.Brands)
	}
}

func TestCatalogHandler_ListBrands_Error(t *testing.T) {
	h := NewCatalogHandler(catalogStub{
		brandsFn: func(context.Context) ([]string, error) {
			return nil, errors.New("db down")
		},
	})

	w := serveCatalog(h, "/catalog/brands")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestCatalogHandler_ListModels(t *testing.T) {
	h := NewCatalogHandler(catalogStub{
		modelsFn: func(_ context.Context, brand string) ([]string, error) {
			if brand != "Perodua" {
				return nil, domainerrors.NotFound("unknown brand")
			}
			return []string{"Axia", "Myvi"}, nil
		},
	})

	w := serveCatalog(h, "/catalog/brands/Perodua/models")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	w = serveCatalog(h, "/catalog/brands/DeLorean/models")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
