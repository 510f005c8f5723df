package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"paxscan/internal/domain"
)

// MockStatsRepository is a mock implementation of port.StatsRepository.
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) InsertAttempt(ctx context.Context, res *domain.ExtractionResult) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *MockStatsRepository) GetStats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}
