package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"motor-kita.backend/internal/domain/entities"
	domainerrors "motor-kita.backend/internal/domain/errors"
	"motor-kita.backend/internal/domain/repositories"
	"motor-kita.backend/pkg/crypto"
	"motor-kita.backend/pkg/metrics"
	"motor-kita.backend/pkg/plate"
)

// LookupUsecase runs the plate ownership lookup protocol: verify the plate,
// gate prefill behind a bounded-attempt secret check, and hand the section
// state machine its one forward jump into the personal section.
type LookupUsecase struct {
	sessions repositories.SessionRepository
	vehicles repositories.VehicleRecordRepository
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewLookupUsecase creates a new lookup usecase
func NewLookupUsecase(sessions repositories.SessionRepository, vehicles repositories.VehicleRecordRepository, m *metrics.Metrics) *LookupUsecase {
	return &LookupUsecase{sessions: sessions, vehicles: vehicles, metrics: m, now: time.Now}
}

// VerifyResult reports the outcome of one plate verification. Lookup
// failures arrive here as data, never as a Go error.
type VerifyResult struct {
	Record  *entities.OnboardingRecord `json:"record"`
	Status  string                     `json:"status"` // new | existing | invalid | error
	Message string                     `json:"message,omitempty"`
}

// ChallengeResult reports one secret submission against an open challenge.
type ChallengeResult struct {
	Record            *entities.OnboardingRecord `json:"record"`
	OK                bool                       `json:"ok"`
	AttemptsRemaining int                        `json:"attemptsRemaining"`
	Exhausted         bool                       `json:"exhausted"`
	Message           string                     `json:"message,omitempty"`
}

// VerifyPlate starts a verification cycle for the session. A cycle already
// waiting on the user (challenge or new-confirm) must be resolved or
// cancelled first.
func (u *LookupUsecase) VerifyPlate(ctx context.Context, id uuid.UUID, raw string) (*VerifyResult, error) {
	rec, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Lookup.Phase == entities.LookupChallenge || rec.Lookup.Phase == entities.LookupNewConfirm {
		return nil, domainerrors.Conflict(
			"resolve or cancel the pending verification first",
			domainerrors.ErrLookupInFlight,
		)
	}

	canon := plate.Canonicalize(raw)
	if !plate.IsValidFormat(raw) {
		u.metrics.ObservePlateVerification("invalid")
		return &VerifyResult{
			Record:  rec,
			Status:  "invalid",
			Message: "Please enter a valid plate number.",
		}, nil
	}

	// The candidate stays in the lookup state until a confirmation copies it
	// onto the record; an abandoned cycle therefore leaves the record's plate
	// untouched.
	rec.Lookup = entities.LookupState{Phase: entities.LookupVerifying, Plate: canon}

	// The record itself is re-fetched at confirmation time, never cached on
	// the session.
	_, lookupErr := u.vehicles.GetByPlate(ctx, canon)
	switch {
	case lookupErr == nil:
		rec.Lookup.Phase = entities.LookupChallenge
		rec.Lookup.AttemptsRemaining = entities.MaxChallengeAttempts
		u.metrics.ObservePlateVerification("existing")
	case errors.Is(lookupErr, domainerrors.ErrNotFound):
		rec.Lookup.Phase = entities.LookupNewConfirm
		u.metrics.ObservePlateVerification("new")
	default:
		// Transport failure: back to idle, no attempt consumed, surfaced inline.
		rec.Lookup = entities.LookupState{Phase: entities.LookupIdle}
		u.metrics.ObservePlateVerification("error")
		if err := u.save(ctx, rec); err != nil {
			return nil, err
		}
		return &VerifyResult{
			Record:  rec,
			Status:  "error",
			Message: "Verification failed. Please try again.",
		}, nil
	}

	if err := u.save(ctx, rec); err != nil {
		return nil, err
	}
	status := "new"
	if rec.Lookup.Phase == entities.LookupChallenge {
		status = "existing"
	}
	return &VerifyResult{Record: rec, Status: status}, nil
}

// ConfirmNew accepts the fresh-application confirmation: the plate gate
// opens and the wizard advances to the personal section.
func (u *LookupUsecase) ConfirmNew(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, error) {
	rec, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Lookup.Phase != entities.LookupNewConfirm {
		return nil, domainerrors.Conflict("no new-vehicle confirmation pending", domainerrors.ErrNoActiveChallenge)
	}

	rec.Plate = rec.Lookup.Plate
	rec.PlateConfirmed = true
	rec.ActiveSection = entities.SectionPersonal
	rec.Lookup = entities.LookupState{Phase: entities.LookupIdle, Plate: rec.Plate}
	if err := u.save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ConfirmOwnership submits one last-4 secret against the open challenge.
// A match prefills personal and car data and advances to the personal
// section; the third consecutive mismatch aborts the cycle back to idle.
// Prefill is all-or-nothing: a mismatch mutates only the attempt counter.
func (u *LookupUsecase) ConfirmOwnership(ctx context.Context, id uuid.UUID, last4 string) (*ChallengeResult, error) {
	rec, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Lookup.Phase != entities.LookupChallenge {
		return nil, domainerrors.Conflict("no ownership challenge in progress", domainerrors.ErrNoActiveChallenge)
	}

	vehicle, lookupErr := u.vehicles.GetByPlate(ctx, rec.Lookup.Plate)
	if lookupErr != nil {
		// Transport failure mid-challenge: keep the challenge open, consume
		// no attempt, surface inline.
		return &ChallengeResult{
			Record:            rec,
			AttemptsRemaining: rec.Lookup.AttemptsRemaining,
			Message:           "Something went wrong. Try again.",
		}, nil
	}

	if !crypto.CheckSecret(last4, vehicle.OwnerSecretHash) {
		rec.Lookup.AttemptsRemaining--
		result := &ChallengeResult{
			Record:            rec,
			AttemptsRemaining: rec.Lookup.AttemptsRemaining,
			Message:           "Invalid IC number.",
		}
		if rec.Lookup.AttemptsRemaining <= 0 {
			rec.Lookup = entities.LookupState{Phase: entities.LookupIdle}
			result.Exhausted = true
			result.AttemptsRemaining = 0
			result.Message = "Too many failed attempts. Please restart verification."
			u.metrics.ObserveChallengeAttempt("exhausted")
		} else {
			u.metrics.ObserveChallengeAttempt("mismatch")
		}
		if err := u.save(ctx, rec); err != nil {
			return nil, err
		}
		return result, nil
	}

	rec.Personal = mergePersonal(rec.Personal, vehicle.Personal)
	rec.Car = mergeCar(rec.Car, vehicle.Car)
	refreshDerived(rec, u.now())
	rec.Plate = vehicle.Plate
	rec.PlateConfirmed = true
	rec.ActiveSection = entities.SectionPersonal
	rec.Lookup = entities.LookupState{Phase: entities.LookupPrefilled, Plate: vehicle.Plate}
	u.metrics.ObserveChallengeAttempt("ok")

	if err := u.save(ctx, rec); err != nil {
		return nil, err
	}
	return &ChallengeResult{Record: rec, OK: true}, nil
}

// Cancel abandons a pending challenge or new-confirm, returning the cycle to
// idle without touching the onboarding data.
func (u *LookupUsecase) Cancel(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, error) {
	rec, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch rec.Lookup.Phase {
	case entities.LookupChallenge, entities.LookupNewConfirm:
		rec.Lookup = entities.LookupState{Phase: entities.LookupIdle}
		if err := u.save(ctx, rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

func (u *LookupUsecase) save(ctx context.Context, rec *entities.OnboardingRecord) error {
	rec.UpdatedAt = u.now()
	return u.sessions.Save(ctx, rec)
}
