package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockNetworkProbe is a mock implementation of port.NetworkProbe.
type MockNetworkProbe struct {
	mock.Mock
}

func (m *MockNetworkProbe) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}
