package mocks

import (
	"github.com/stretchr/testify/mock"

	"paxscan/internal/domain"
)

// MockStatsRecorder is a mock implementation of port.StatsRecorder.
type MockStatsRecorder struct {
	mock.Mock
}

func (m *MockStatsRecorder) Record(res *domain.ExtractionResult) {
	m.Called(res)
}
