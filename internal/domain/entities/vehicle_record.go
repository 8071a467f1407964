package entities

import (
	"time"

	"github.com/google/uuid"
)

// VehicleRecord is a previously recorded owner/vehicle pair found by plate
// lookup. OwnerSecretHash is the bcrypt hash of the last 4 digits of the
// owner's NRIC; the plaintext secret is never stored or returned.
type VehicleRecord struct {
	ID              uuid.UUID    `json:"id"`
	Plate           string       `json:"plate"` // canonical
	OwnerSecretHash string       `json:"-"`
	Personal        PersonalInfo `json:"personal"`
	Car             CarInfo      `json:"car"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}
