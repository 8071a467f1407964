package usecases_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"motor-kita.backend/internal/domain/entities"
	"motor-kita.backend/internal/usecases"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func validPersonal() entities.PersonalInfo {
	return entities.PersonalInfo{
		IDType:       entities.IDTypeNRIC,
		IDValue:      "990101015555",
		FullName:     "Aiman Hakim",
		Email:        "aiman@mail.com",
		Phone:        "0123456789",
		AddressLine1: "12 Jalan Bunga",
		Postcode:     "43000",
		City:         "Kajang",
		State:        "Selangor",
	}
}

func validCar() entities.CarInfo {
	return entities.CarInfo{Brand: "Perodua", Model: "Myvi 1.5", Year: "2020"}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, usecases.IsValidEmail("a@b.co"))
	assert.False(t, usecases.IsValidEmail("a@b"))
	assert.False(t, usecases.IsValidEmail("not an email"))
	assert.False(t, usecases.IsValidEmail(""))
}

func TestIsValidPostcode(t *testing.T) {
	assert.True(t, usecases.IsValidPostcode("43000"))
	assert.False(t, usecases.IsValidPostcode("4300"))
	assert.False(t, usecases.IsValidPostcode("430000"))
	assert.False(t, usecases.IsValidPostcode("4300a"))
}

func TestIsValidMobile(t *testing.T) {
	assert.True(t, usecases.IsValidMobile("0123456789"))
	assert.True(t, usecases.IsValidMobile("+60 12-345 6789"))
	assert.False(t, usecases.IsValidMobile("12345678"))
	assert.False(t, usecases.IsValidMobile("1234567890123"))
}

func TestIsValidIdentification(t *testing.T) {
	assert.True(t, usecases.IsValidIdentification(entities.IDTypeNRIC, "990101015555", testNow))
	assert.False(t, usecases.IsValidIdentification(entities.IDTypeNRIC, "991301015555", testNow)) // month 13
	assert.False(t, usecases.IsValidIdentification(entities.IDTypeNRIC, "99010101555", testNow))  // 11 digits
	assert.True(t, usecases.IsValidIdentification(entities.IDTypePassport, "A1234567", testNow))
	assert.False(t, usecases.IsValidIdentification(entities.IDTypePassport, "AB", testNow))
}

func TestIsValidCarYear(t *testing.T) {
	assert.True(t, usecases.IsValidCarYear("1990", testNow))
	assert.True(t, usecases.IsValidCarYear("2027", testNow)) // next year
	assert.False(t, usecases.IsValidCarYear("2028", testNow))
	assert.False(t, usecases.IsValidCarYear("1989", testNow))
	assert.False(t, usecases.IsValidCarYear("199", testNow))
	assert.False(t, usecases.IsValidCarYear("20 20", testNow))
}

func TestValidatePersonal_AllValid(t *testing.T) {
	errs := usecases.ValidatePersonal(validPersonal(), testNow)
	assert.Empty(t, errs)
}

func TestValidatePersonal_ReportsEveryViolation(t *testing.T) {
	errs := usecases.ValidatePersonal(entities.PersonalInfo{IDType: entities.IDTypeNRIC}, testNow)
	for _, field := range []string{"fullName", "idValue", "email", "phone", "addressLine1", "postcode", "city", "state"} {
		assert.Contains(t, errs, field)
	}
}

func TestValidateCar(t *testing.T) {
	assert.Empty(t, usecases.ValidateCar(validCar(), testNow))

	errs := usecases.ValidateCar(entities.CarInfo{Year: "1800"}, testNow)
	assert.Contains(t, errs, "brand")
	assert.Contains(t, errs, "model")
	assert.Contains(t, errs, "year")
}

func TestSectionGate(t *testing.T) {
	rec := entities.NewOnboardingRecord(testNow)
	assert.False(t, usecases.SectionGate(rec, entities.SectionPlate, testNow))
	assert.False(t, usecases.SectionGate(rec, entities.SectionPersonal, testNow))

	rec.PlateConfirmed = true
	rec.Personal = validPersonal()
	rec.Car = validCar()
	assert.True(t, usecases.SectionGate(rec, entities.SectionPlate, testNow))
	assert.True(t, usecases.SectionGate(rec, entities.SectionPersonal, testNow))
	assert.True(t, usecases.SectionGate(rec, entities.SectionCar, testNow))
	assert.True(t, usecases.SectionGate(rec, entities.SectionFunding, testNow))
}
