package repositories

import (
	"context"

	"motor-kita.backend/internal/domain/entities"
)

// VehicleRecordRepository defines vehicle record lookups for plate
// verification. GetByPlate expects the canonical plate form.
type VehicleRecordRepository interface {
	Create(ctx context.Context, record *entities.VehicleRecord) error
	GetByPlate(ctx context.Context, plate string) (*entities.VehicleRecord, error)
}

// CatalogRepository serves the brand/model reference data.
type CatalogRepository interface {
	ListBrands(ctx context.Context) ([]string, error)
	ListModels(ctx context.Context, brand string) ([]string, error)
}
