package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"motor-kita.backend/internal/domain/entities"
	domainerrors "motor-kita.backend/internal/domain/errors"
	"motor-kita.backend/internal/domain/repositories"
	"motor-kita.backend/pkg/metrics"
	"motor-kita.backend/pkg/plate"
)

const genericSubmitFailure = "Submission failed. Please try again."

// SubmissionUsecase assembles the final payload and invokes the downstream
// processor, exactly once per user-initiated submit.
type SubmissionUsecase struct {
	sessions  repositories.SessionRepository
	processor repositories.SubmissionGateway
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewSubmissionUsecase creates a new submission usecase
func NewSubmissionUsecase(sessions repositories.SessionRepository, processor repositories.SubmissionGateway, m *metrics.Metrics) *SubmissionUsecase {
	return &SubmissionUsecase{sessions: sessions, processor: processor, metrics: m, now: time.Now}
}

// Submit runs the submission pipeline. Preconditions: the personal and car
// gates pass and no submission is in flight. A processor failure is recorded
// as a result value and leaves the onboarding data untouched, so an
// identical payload can be resubmitted without re-validating sections.
func (u *SubmissionUsecase) Submit(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, error) {
	rec, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Submission.Pending {
		return nil, domainerrors.Conflict("submission already in progress", domainerrors.ErrSubmissionPending)
	}
	now := u.now()
	if !SectionGate(rec, entities.SectionPersonal, now) || !SectionGate(rec, entities.SectionCar, now) {
		return nil, domainerrors.UnprocessableEntity(
			"personal and car sections must be completed first",
			domainerrors.ErrNotSubmittable,
		)
	}

	rec.Submission = entities.SubmissionState{Pending: true}
	if err := u.save(ctx, rec); err != nil {
		return nil, err
	}

	refreshDerived(rec, now)
	payload := repositories.SubmissionPayload{
		Plate: plate.Canonicalize(rec.Plate),
		Personal: repositories.SubmissionPersonal{
			PersonalInfo: rec.Personal,
			Gender:       string(rec.Derived.Gender),
			DateOfBirth:  rec.Derived.DateOfBirth,
		},
		Car: rec.Car,
	}

	result, submitErr := u.processor.Submit(ctx, payload)
	if submitErr != nil {
		msg := submitErr.Error()
		if msg == "" {
			msg = genericSubmitFailure
		}
		result = &entities.SubmissionResult{OK: false, Message: msg}
	}
	if result.Message == "" && !result.OK {
		result.Message = genericSubmitFailure
	}

	rec.Submission = entities.SubmissionState{Pending: false, Result: result}
	if result.OK {
		u.metrics.ObserveSubmission("ok")
	} else {
		u.metrics.ObserveSubmission("failed")
	}

	if err := u.save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *SubmissionUsecase) save(ctx context.Context, rec *entities.OnboardingRecord) error {
	rec.UpdatedAt = u.now()
	return u.sessions.Save(ctx, rec)
}
