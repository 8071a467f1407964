package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"motor-kita.backend/internal/domain/entities"
	"motor-kita.backend/internal/infrastructure/models"
	"motor-kita.backend/pkg/crypto"
)

// Migrate creates the lookup-side tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.VehicleRecord{},
		&models.CatalogBrand{},
		&models.CatalogModel{},
	)
}

var demoCatalog = map[string][]string{
	"Perodua": {"Myvi", "Axia", "Bezza", "Alza", "Ativa"},
	"Proton":  {"Saga", "Persona", "Iriz", "X50", "X70"},
	"Toyota":  {"Vios", "Camry", "Corolla", "Hilux", "Fortuner"},
	"Honda":   {"City", "Civic", "Accord", "CR-V", "HR-V"},
	"Nissan":  {"Almera", "Sentra", "Teana", "X-Trail", "Navara"},
	"Mazda":   {"Mazda2", "Mazda3", "Mazda6", "CX-3", "CX-5"},
	"Hyundai": {"i10", "i20", "Elantra", "Sonata", "Tucson"},
	"Kia":     {"Picanto", "Rio", "Cerato", "Optima", "Sportage"},
}

type demoVehicle struct {
	record entities.VehicleRecord
	secret string
}

var demoVehicles = []demoVehicle{
	{
		secret: "4321",
		record: entities.VehicleRecord{
			Plate: "JWD3000",
			Personal: entities.PersonalInfo{
				IDType:       entities.IDTypeNRIC,
				IDValue:      "990101015555",
				FullName:     "Aiman Hakim",
				Email:        "aiman@example.com",
				Phone:        "0123456789",
				AddressLine1: "12, Jalan Teknologi",
				Postcode:     "47810",
				City:         "Petaling Jaya",
				State:        "Selangor",
				EHailing:     false,
			},
			Car: entities.CarInfo{Brand: "Perodua", Model: "Myvi 1.5", Year: "2020"},
		},
	},
	{
		secret: "8877",
		record: entities.VehicleRecord{
			Plate: "BJK1234",
			Personal: entities.PersonalInfo{
				IDType:       entities.IDTypeNRIC,
				IDValue:      "010202088877",
				FullName:     "Nurul Izzati",
				Email:        "nurul@example.com",
				Phone:        "0178887777",
				AddressLine1: "33, Jalan Tun Razak",
				Postcode:     "50400",
				City:         "Kuala Lumpur",
				State:        "Wilayah Persekutuan",
				EHailing:     true,
			},
			Car: entities.CarInfo{Brand: "Honda", Model: "City", Year: "2019"},
		},
	},
}

// SeedDemoData inserts the demo catalog and vehicle records if missing.
// Intended for development and demo environments.
func SeedDemoData(ctx context.Context, db *gorm.DB) error {
	for brand, modelNames := range demoCatalog {
		var b models.CatalogBrand
		err := db.WithContext(ctx).Where("name = ?", brand).First(&b).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		b = models.CatalogBrand{ID: uuid.New(), Name: brand, IsActive: true}
		if err := db.WithContext(ctx).Create(&b).Error; err != nil {
			return err
		}
		for _, name := range modelNames {
			m := models.CatalogModel{ID: uuid.New(), BrandID: b.ID, Name: name, IsActive: true}
			if err := db.WithContext(ctx).Create(&m).Error; err != nil {
				return err
			}
		}
	}

	repo := NewVehicleRecordRepository(db)
	for _, v := range demoVehicles {
		if _, err := repo.GetByPlate(ctx, v.record.Plate); err == nil {
			continue
		}
		hash, err := crypto.HashSecret(v.secret)
		if err != nil {
			return err
		}
		rec := v.record
		rec.OwnerSecretHash = hash
		if err := repo.Create(ctx, &rec); err != nil {
			return err
		}
	}
	return nil
}
