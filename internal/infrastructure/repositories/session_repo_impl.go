package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"motor-kita.backend/internal/domain/entities"
	domainerrors "motor-kita.backend/internal/domain/errors"
	"motor-kita.backend/internal/domain/repositories"
	"motor-kita.backend/pkg/redis"
)

// sessionRepo implements repositories.SessionRepository on top of the
// encrypted redis session store. Records live for the session TTL, refreshed
// on every save; nothing survives the session.
type sessionRepo struct {
	store *redis.SessionStore
	ttl   time.Duration
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(store *redis.SessionStore, ttl time.Duration) repositories.SessionRepository {
	return &sessionRepo{store: store, ttl: ttl}
}

// Save stores the record, refreshing the session TTL
func (r *sessionRepo) Save(ctx context.Context, record *entities.OnboardingRecord) error {
	return r.store.SaveSession(ctx, record.ID.String(), record, r.ttl)
}

// Get loads the record for a session
func (r *sessionRepo) Get(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, error) {
	var rec entities.OnboardingRecord
	if err := r.store.GetSession(ctx, id.String(), &rec); err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domainerrors.NotFound("onboarding session not found")
		}
		return nil, err
	}
	if rec.Attempted == nil {
		rec.Attempted = map[entities.Section]bool{}
	}
	return &rec, nil
}

// Delete discards a session record
func (r *sessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.DeleteSession(ctx, id.String())
}
