package repositories

import (
	"context"

	"github.com/google/uuid"
	"motor-kita.backend/internal/domain/entities"
)

// SessionRepository stores the onboarding record for the life of a session.
// Records expire with the session; there is no durable storage behind it.
type SessionRepository interface {
	Save(ctx context.Context, record *entities.OnboardingRecord) error
	Get(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
