package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"motor-kita.backend/internal/interfaces/http/response"
)

type catalogLister interface {
	ListBrands(ctx context.Context) ([]string, error)
	ListModels(ctx context.Context, brand string) ([]string, error)
}

type CatalogHandler struct {
	catalog catalogLister
}

func NewCatalogHandler(catalog catalogLister) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListBrands returns the selectable car brands
// GET /api/v1/catalog/brands
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.catalog.ListBrands(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"brands": brands})
}

// ListModels returns the models of one brand
// GET /api/v1/catalog/brands/:brand/models
func (h *CatalogHandler) ListModels(c *gin.Context) {
	models, err := h.catalog.ListModels(c.Request.Context(), c.Param("brand"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"models": models})
}
