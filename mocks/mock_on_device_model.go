package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockOnDeviceModel is a mock implementation of port.OnDeviceModel.
type MockOnDeviceModel struct {
	mock.Mock
}

func (m *MockOnDeviceModel) Respond(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
