package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Plate           string    `gorm:"type:varchar(10);not null;uniqueIndex"`
	OwnerSecretHash string    `gorm:"type:varchar(100);not null"`
	IDType          string    `gorm:"type:varchar(20);not null"`
	IDValue         string    `gorm:"type:varchar(50);not null"`
	FullName        string    `gorm:"type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255)"`
	Phone           string    `gorm:"type:varchar(20)"`
	AddressLine1    string    `gorm:"type:varchar(255)"`
	Postcode        string    `gorm:"type:varchar(5)"`
	City            string    `gorm:"type:varchar(100)"`
	State           string    `gorm:"type:varchar(100)"`
	EHailing        bool      `gorm:"not null;default:false"`
	CarBrand        string    `gorm:"type:varchar(100);not null"`
	CarModel        string    `gorm:"type:varchar(100);not null"`
	CarYear         string    `gorm:"type:varchar(4);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (VehicleRecord) TableName() string {
	return "vehicle_records"
}
