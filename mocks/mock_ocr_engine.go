package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"paxscan/internal/domain"
	"paxscan/internal/port"
)

// MockOCREngine is a mock implementation of port.OCREngine.
type MockOCREngine struct {
	mock.Mock
}

func (m *MockOCREngine) Recognize(ctx context.Context, image domain.ImageInput, level domain.AccuracyLevel) ([]port.Observation, error) {
	args := m.Called(ctx, image, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.Observation), args.Error(1)
}
