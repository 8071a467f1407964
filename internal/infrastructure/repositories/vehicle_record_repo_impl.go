package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"motor-kita.backend/internal/domain/entities"
	domainerrors "motor-kita.backend/internal/domain/errors"
	"motor-kita.backend/internal/domain/repositories"
	"motor-kita.backend/internal/infrastructure/models"
	"motor-kita.backend/pkg/plate"
)

// vehicleRecordRepo implements repositories.VehicleRecordRepository
type vehicleRecordRepo struct {
	db *gorm.DB
}

// NewVehicleRecordRepository creates a new vehicle record repository
func NewVehicleRecordRepository(db *gorm.DB) repositories.VehicleRecordRepository {
	return &vehicleRecordRepo{db: db}
}

// Create stores a new vehicle record. The plate is canonicalized before
// writing so lookups by canonical plate always hit.
func (r *vehicleRecordRepo) Create(ctx context.Context, record *entities.VehicleRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	m := r.toModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	record.CreatedAt = m.CreatedAt
	record.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByPlate gets a vehicle record by canonical plate
func (r *vehicleRecordRepo) GetByPlate(ctx context.Context, canonical string) (*entities.VehicleRecord, error) {
	var m models.VehicleRecord
	if err := r.db.WithContext(ctx).Where("plate = ?", canonical).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *vehicleRecordRepo) toModel(e *entities.VehicleRecord) *models.VehicleRecord {
	return &models.VehicleRecord{
		ID:              e.ID,
		Plate:           plate.Canonicalize(e.Plate),
		OwnerSecretHash: e.OwnerSecretHash,
		IDType:          string(e.Personal.IDType),
		IDValue:         e.Personal.IDValue,
		FullName:        e.Personal.FullName,
		Email:           e.Personal.Email,
		Phone:           e.Personal.Phone,
		AddressLine1:    e.Personal.AddressLine1,
		Postcode:        e.Personal.Postcode,
		City:            e.Personal.City,
		State:           e.Personal.State,
		EHailing:        e.Personal.EHailing,
		CarBrand:        e.Car.Brand,
		CarModel:        e.Car.Model,
		CarYear:         e.Car.Year,
	}
}

func (r *vehicleRecordRepo) toEntity(m *models.VehicleRecord) *entities.VehicleRecord {
	return &entities.VehicleRecord{
		ID:              m.ID,
		Plate:           m.Plate,
		OwnerSecretHash: m.OwnerSecretHash,
		Personal: entities.PersonalInfo{
			IDType:       entities.IdentificationType(m.IDType),
			IDValue:      m.IDValue,
			FullName:     m.FullName,
			Email:        m.Email,
			Phone:        m.Phone,
			AddressLine1: m.AddressLine1,
			Postcode:     m.Postcode,
			City:         m.City,
			State:        m.State,
			EHailing:     m.EHailing,
		},
		Car: entities.CarInfo{
			Brand: m.CarBrand,
			Model: m.CarModel,
			Year:  m.CarYear,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
