package mocks

import (
	"context"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockShowSessionRepo struct {
	mock.Mock
	domain.ShowSessionRepository
}

func (m *MockShowSessionRepo) GetAll(ctx context.Context, filters domain.ShowSessionFilters) ([]domain.ShowSession, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShowSession), args.Error(1)
}

func (m *MockShowSessionRepo) GetById(ctx context.Context, id int) (*domain.ShowSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShowSession), args.Error(1)
}

func (m *MockShowSessionRepo) GetByIds(ctx context.Context, ids []int) (map[int]domain.ShowSession, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]domain.ShowSession), args.Error(1)
}

func (m *MockShowSessionRepo) Create(ctx context.Context, session *domain.ShowSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockShowSessionRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
