package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainerrors "motor-kita.backend/internal/domain/errors"
	"motor-kita.backend/internal/domain/repositories"
	"motor-kita.backend/internal/infrastructure/models"
)

// catalogRepo implements repositories.CatalogRepository
type catalogRepo struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) repositories.CatalogRepository {
	return &catalogRepo{db: db}
}

// ListBrands lists active brand names in alphabetical order
func (r *catalogRepo) ListBrands(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.CatalogBrand{}).
		Where("is_active = ?", true).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// ListModels lists active model names for a brand
func (r *catalogRepo) ListModels(ctx context.Context, brand string) ([]string, error) {
	var b models.CatalogBrand
	if err := r.db.WithContext(ctx).Where("name = ? AND is_active = ?", brand, true).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.CatalogModel{}).
		Where("brand_id = ? AND is_active = ?", b.ID, true).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
