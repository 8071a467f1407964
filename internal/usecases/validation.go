package usecases

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"motor-kita.backend/internal/domain/entities"
	"motor-kita.backend/pkg/nric"
)

// FieldErrors maps a field name to its rule-violation message. An empty map
// means the section gate passes.
type FieldErrors map[string]string

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	postcodePattern = regexp.MustCompile(`^\d{5}$`)
	yearPattern     = regexp.MustCompile(`^\d{4}$`)
)

// Field predicates. Each is pure; evaluation order never matters because the
// section gate is a plain conjunction.

func IsValidEmail(v string) bool {
	return emailPattern.MatchString(v)
}

func IsValidPostcode(v string) bool {
	return postcodePattern.MatchString(v)
}

// IsValidMobile accepts 9 to 12 digits after stripping separators.
func IsValidMobile(v string) bool {
	n := len(nric.Digits(v))
	return n >= 9 && n <= 12
}

// IsValidIdentification applies the NRIC calendar rule for NRIC values and a
// minimal length placeholder for passports and business registrations.
func IsValidIdentification(t entities.IdentificationType, v string, now time.Time) bool {
	if t == entities.IDTypeNRIC {
		return nric.IsValid(v, now)
	}
	return len(strings.TrimSpace(v)) >= 3
}

// IsValidCarYear accepts exactly 4 digits between 1990 and next year.
func IsValidCarYear(v string, now time.Time) bool {
	if !yearPattern.MatchString(v) {
		return false
	}
	y, _ := strconv.Atoi(v)
	return y >= 1990 && y <= now.Year()+1
}

// ValidatePersonal evaluates every personal-section rule and returns the
// violations keyed by field.
func ValidatePersonal(p entities.PersonalInfo, now time.Time) FieldErrors {
	errs := FieldErrors{}
	if len(strings.TrimSpace(p.FullName)) <= 1 {
		errs["fullName"] = "Please enter your full name."
	}
	if !IsValidIdentification(p.IDType, p.IDValue, now) {
		errs["idValue"] = "Please enter a valid identification number."
	}
	if !IsValidEmail(p.Email) {
		errs["email"] = "Please enter a valid email address."
	}
	if !IsValidMobile(p.Phone) {
		errs["phone"] = "Please enter a valid mobile number."
	}
	if len(strings.TrimSpace(p.AddressLine1)) <= 3 {
		errs["addressLine1"] = "Please enter your address."
	}
	if !IsValidPostcode(p.Postcode) {
		errs["postcode"] = "Postcode must be 5 digits."
	}
	if len(strings.TrimSpace(p.City)) <= 1 {
		errs["city"] = "Please enter your city."
	}
	if len(strings.TrimSpace(p.State)) <= 1 {
		errs["state"] = "Please enter your state."
	}
	return errs
}

// ValidateCar evaluates every car-section rule.
func ValidateCar(c entities.CarInfo, now time.Time) FieldErrors {
	errs := FieldErrors{}
	if len(strings.TrimSpace(c.Brand)) <= 1 {
		errs["brand"] = "Please select a brand."
	}
	if len(strings.TrimSpace(c.Model)) <= 1 {
		errs["model"] = "Please select a model."
	}
	if !IsValidCarYear(c.Year, now) {
		errs["year"] = "Year must be 4 digits between 1990 and next year."
	}
	return errs
}

// SectionGate reports whether a section's validation gate passes for the
// current record state. The plate gate is satisfied only by the ownership
// lookup protocol, never by field rules. Funding has no gate of its own.
func SectionGate(rec *entities.OnboardingRecord, s entities.Section, now time.Time) bool {
	switch s {
	case entities.SectionPlate:
		return rec.PlateConfirmed
	case entities.SectionPersonal:
		return len(ValidatePersonal(rec.Personal, now)) == 0
	case entities.SectionCar:
		return len(ValidateCar(rec.Car, now)) == 0
	default:
		return true
	}
}
