package usecases

import (
	"github.com/volatiletech/null/v8"

	"motor-kita.backend/internal/domain/entities"
)

func nullableString(s string) null.String {
	return null.NewString(s, s != "")
}

// mergePersonal copies the recorded owner's personal data over the session's
// current values. Precedence: the external record wins on every field it
// carries; empty strings in the record leave local input untouched, booleans
// are taken from the record unconditionally.
func mergePersonal(local, external entities.PersonalInfo) entities.PersonalInfo {
	out := local
	if external.IDType != "" {
		out.IDType = external.IDType
	}
	if external.IDValue != "" {
		out.IDValue = external.IDValue
	}
	if external.FullName != "" {
		out.FullName = external.FullName
	}
	if external.Email != "" {
		out.Email = external.Email
	}
	if external.Phone != "" {
		out.Phone = external.Phone
	}
	if external.AddressLine1 != "" {
		out.AddressLine1 = external.AddressLine1
	}
	if external.Postcode != "" {
		out.Postcode = external.Postcode
	}
	if external.City != "" {
		out.City = external.City
	}
	if external.State != "" {
		out.State = external.State
	}
	out.EHailing = external.EHailing
	if external.Note.Valid {
		out.Note = external.Note
	}
	return out
}

// mergeCar applies the same precedence rule to the car section.
func mergeCar(local, external entities.CarInfo) entities.CarInfo {
	out := local
	if external.Brand != "" {
		out.Brand = external.Brand
	}
	if external.Model != "" {
		out.Model = external.Model
	}
	if external.Year != "" {
		out.Year = external.Year
	}
	return out
}
