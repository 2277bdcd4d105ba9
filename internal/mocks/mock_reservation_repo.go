package mocks

import (
	"context"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepo struct {
	mock.Mock
	domain.ReservationRepository
}

// Create returns (sessions, taken, err) from the expectation. Without an
// error, check runs against the returned sessions and taken tickets the way
// the repository runs it inside its transaction.
func (m *MockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation, check domain.TicketCheck) error {
	args := m.Called(ctx, reservation)
	if err := args.Error(2); err != nil {
		return err
	}

	var (
		sessions map[int]domain.ShowSession
		taken    []domain.Ticket
	)
	if v := args.Get(0); v != nil {
		sessions = v.(map[int]domain.ShowSession)
	}
	if v := args.Get(1); v != nil {
		taken = v.([]domain.Ticket)
	}

	return check(sessions, taken)
}

func (m *MockReservationRepo) GetTicketsBySessionIds(ctx context.Context, sessionIDs []int) ([]domain.Ticket, error) {
	args := m.Called(ctx, sessionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockReservationRepo) GetAllByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error) {

	args := m.Called(ctx, userID, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Reservation), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockReservationRepo) GetByIdAndUserId(ctx context.Context, id, userID int) (*domain.Reservation, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) Delete(ctx context.Context, id, userID int) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
