package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"motor-kita.backend/internal/domain/entities"
	domainerrors "motor-kita.backend/internal/domain/errors"
	"motor-kita.backend/internal/domain/repositories"
	"motor-kita.backend/pkg/nric"
)

// OnboardingUsecase owns the section state machine: which section is open,
// save-and-continue gating, and the derived-identity invariant. Every legal
// transition is a named method here; nothing else mutates the record.
type OnboardingUsecase struct {
	sessions repositories.SessionRepository
	now      func() time.Time
}

// NewOnboardingUsecase creates a new onboarding usecase
func NewOnboardingUsecase(sessions repositories.SessionRepository) *OnboardingUsecase {
	return &OnboardingUsecase{sessions: sessions, now: time.Now}
}

// StartSession creates the empty record with the plate section open.
func (u *OnboardingUsecase) StartSession(ctx context.Context) (*entities.OnboardingRecord, error) {
	rec := entities.NewOnboardingRecord(u.now())
	refreshDerived(rec, u.now())
	if err := u.sessions.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// GetRecord loads a session record. Derived attributes are recomputed on
// every load so they can never go stale against the identification value.
func (u *OnboardingUsecase) GetRecord(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, error) {
	rec, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	refreshDerived(rec, u.now())
	return rec, nil
}

// OpenSection navigates the accordion. Backward (or re-opening the active
// section) is always permitted and validates nothing. Forward is permitted
// only when the gate of every section between the active one and the target
// passes; the plate gate is satisfied only by a completed lookup cycle.
func (u *OnboardingUsecase) OpenSection(ctx context.Context, id uuid.UUID, target entities.Section) (*entities.OnboardingRecord, error) {
	if target.Index() < 0 {
		return nil, domainerrors.BadRequest("unknown section")
	}
	rec, err := u.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	from, to := rec.ActiveSection.Index(), target.Index()
	for i := from; i < to; i++ {
		if !SectionGate(rec, entities.SectionOrder[i], u.now()) {
			return nil, domainerrors.UnprocessableEntity(
				"complete the current section before moving forward",
				domainerrors.ErrForwardNotPermitted,
			)
		}
	}

	rec.ActiveSection = target
	if err := u.save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// PersonalUpdate carries a live edit of the personal section.
type PersonalUpdate struct {
	IDType       entities.IdentificationType
	IDValue      string
	FullName     string
	Email        string
	Phone        string
	AddressLine1 string
	Postcode     string
	City         string
	State        string
	EHailing     bool
	Note         string
}

// UpdatePersonal applies a live edit and returns the current rule violations
// for inline display. Switching the identification type clears the value in
// the same update, so a stale number is never validated under the new rule.
func (u *OnboardingUsecase) UpdatePersonal(ctx context.Context, id uuid.UUID, in PersonalUpdate) (*entities.OnboardingRecord, FieldErrors, error) {
	rec, err := u.GetRecord(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	typeChanged := in.IDType != "" && in.IDType != rec.Personal.IDType

	p := rec.Personal
	if in.IDType != "" {
		p.IDType = in.IDType
	}
	p.IDValue = in.IDValue
	if typeChanged {
		p.IDValue = ""
	}
	p.FullName = in.FullName
	p.Email = in.Email
	p.Phone = in.Phone
	p.AddressLine1 = in.AddressLine1
	p.Postcode = in.Postcode
	p.City = in.City
	p.State = in.State
	p.EHailing = in.EHailing
	p.Note = nullableString(in.Note)
	rec.Personal = p

	refreshDerived(rec, u.now())
	if err := u.save(ctx, rec); err != nil {
		return nil, nil, err
	}
	return rec, ValidatePersonal(rec.Personal, u.now()), nil
}

// SetIdentificationType switches the identification type without navigating.
// The identification value is always cleared.
func (u *OnboardingUsecase) SetIdentificationType(ctx context.Context, id uuid.UUID, t entities.IdentificationType) (*entities.OnboardingRecord, error) {
	switch t {
	case entities.IDTypeNRIC, entities.IDTypePassport, entities.IDTypeBRN:
	default:
		return nil, domainerrors.BadRequest("unknown identification type")
	}

	rec, err := u.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Personal.IDType = t
	rec.Personal.IDValue = ""
	refreshDerived(rec, u.now())
	if err := u.save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// SavePersonal is the personal section's save-and-continue. A failing gate
// marks the section attempted so every violated field shows its error, and
// blocks the advance. Saving never skips earlier gates: the advance into car
// also requires every section before personal to pass.
func (u *OnboardingUsecase) SavePersonal(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, FieldErrors, error) {
	rec, err := u.GetRecord(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !priorGatesPass(rec, entities.SectionPersonal, u.now()) {
		return nil, nil, domainerrors.UnprocessableEntity(
			"complete the earlier sections before saving",
			domainerrors.ErrForwardNotPermitted,
		)
	}

	rec.Attempted[entities.SectionPersonal] = true
	errs := ValidatePersonal(rec.Personal, u.now())
	if len(errs) == 0 {
		rec.ActiveSection = entities.SectionCar
	}
	if err := u.save(ctx, rec); err != nil {
		return nil, nil, err
	}
	return rec, errs, nil
}

// CarUpdate carries a live edit of the car section.
type CarUpdate struct {
	Brand string
	Model string
	Year  string
}

// UpdateCar applies a live edit of the car section.
func (u *OnboardingUsecase) UpdateCar(ctx context.Context, id uuid.UUID, in CarUpdate) (*entities.OnboardingRecord, FieldErrors, error) {
	rec, err := u.GetRecord(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rec.Car = entities.CarInfo{Brand: in.Brand, Model: in.Model, Year: in.Year}
	if err := u.save(ctx, rec); err != nil {
		return nil, nil, err
	}
	return rec, ValidateCar(rec.Car, u.now()), nil
}

// SaveCar is the car section's save-and-continue into funding. The plate and
// personal gates must already hold.
func (u *OnboardingUsecase) SaveCar(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, FieldErrors, error) {
	rec, err := u.GetRecord(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !priorGatesPass(rec, entities.SectionCar, u.now()) {
		return nil, nil, domainerrors.UnprocessableEntity(
			"complete the earlier sections before saving",
			domainerrors.ErrForwardNotPermitted,
		)
	}

	rec.Attempted[entities.SectionCar] = true
	errs := ValidateCar(rec.Car, u.now())
	if len(errs) == 0 {
		rec.ActiveSection = entities.SectionFunding
	}
	if err := u.save(ctx, rec); err != nil {
		return nil, nil, err
	}
	return rec, errs, nil
}

func (u *OnboardingUsecase) save(ctx context.Context, rec *entities.OnboardingRecord) error {
	rec.UpdatedAt = u.now()
	return u.sessions.Save(ctx, rec)
}

// priorGatesPass reports whether every gate before s is satisfied, in order.
func priorGatesPass(rec *entities.OnboardingRecord, s entities.Section, now time.Time) bool {
	for i := 0; i < s.Index(); i++ {
		if !SectionGate(rec, entities.SectionOrder[i], now) {
			return false
		}
	}
	return true
}

// refreshDerived enforces the invariant that derived identity is a pure
// function of the current identification value.
func refreshDerived(rec *entities.OnboardingRecord, now time.Time) {
	if rec.Personal.IDType == entities.IDTypeNRIC {
		rec.Derived = nric.Derive(rec.Personal.IDValue, now)
		return
	}
	rec.Derived = nric.DerivedIdentity{Gender: nric.GenderUnknown}
}
