package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"campus-hub.backend/internal/domain/entities"
)

// Mock EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, limit, offset int) ([]*entities.Event, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Event), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) UpdateIndividuals(ctx context.Context, id uuid.UUID, members []uuid.UUID, version int) (*entities.Event, error) {
	args := m.Called(ctx, id, members, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *MockEventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.EventStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockEventRepository) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// Mock TeamRepository
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*entities.Team, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) UpdateMembers(ctx context.Context, id uuid.UUID, members []uuid.UUID, version int) (*entities.Team, error) {
	args := m.Called(ctx, id, members, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) ExistsByEventAndName(ctx context.Context, eventID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, eventID, name)
	return args.Bool(0), args.Error(1)
}

// Mock StudentRepository
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Student), args.Error(1)
}

func (m *MockStudentRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Student, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Student), args.Error(1)
}

// Mock CollegeRepository
type MockCollegeRepository struct {
	mock.Mock
}

func (m *MockCollegeRepository) List(ctx context.Context) ([]*entities.College, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.College), args.Error(1)
}
