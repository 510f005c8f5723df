package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"paxscan/internal/domain"
	"paxscan/internal/port"
)

// MockExtractionStrategy is a mock implementation of port.ExtractionStrategy.
type MockExtractionStrategy struct {
	mock.Mock
}

func (m *MockExtractionStrategy) Name() domain.Strategy {
	args := m.Called()
	return args.Get(0).(domain.Strategy)
}

func (m *MockExtractionStrategy) Extract(ctx context.Context, image domain.ImageInput) (*port.StrategyOutput, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.StrategyOutput), args.Error(1)
}
