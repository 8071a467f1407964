package usecases_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"motor-kita.backend/internal/domain/entities"
	domainerrors "motor-kita.backend/internal/domain/errors"
	"motor-kita.backend/internal/domain/repositories"
)

// fakeSessionRepo is an in-memory SessionRepository. The state machine tests
// drive real save/load cycles through it instead of scripting expectations.
type fakeSessionRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]entities.OnboardingRecord
	saveErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{records: map[uuid.UUID]entities.OnboardingRecord{}}
}

func (f *fakeSessionRepo) Save(_ context.Context, rec *entities.OnboardingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records[rec.ID] = *rec
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, id uuid.UUID) (*entities.OnboardingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}
	cp := rec
	if cp.Attempted == nil {
		cp.Attempted = map[entities.Section]bool{}
	}
	return &cp, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, id)
	return nil
}

type MockVehicleRecordRepository struct {
	mock.Mock
}

func (m *MockVehicleRecordRepository) Create(ctx context.Context, record *entities.VehicleRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVehicleRecordRepository) GetByPlate(ctx context.Context, plate string) (*entities.VehicleRecord, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VehicleRecord), args.Error(1)
}

type MockSubmissionGateway struct {
	mock.Mock
}

func (m *MockSubmissionGateway) Submit(ctx context.Context, payload repositories.SubmissionPayload) (*entities.SubmissionResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SubmissionResult), args.Error(1)
}
