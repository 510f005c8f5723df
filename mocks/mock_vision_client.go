package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"paxscan/internal/domain"
	"paxscan/internal/port"
)

// MockVisionClient is a mock implementation of port.VisionClient.
type MockVisionClient struct {
	mock.Mock
}

func (m *MockVisionClient) Infer(ctx context.Context, image domain.ImageInput, instructions string) (*port.VisionReply, error) {
	args := m.Called(ctx, image, instructions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.VisionReply), args.Error(1)
}
