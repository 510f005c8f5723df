package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"paxscan/internal/domain"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) ExtractImage(ctx context.Context, image domain.ImageInput) (*domain.BoardingPassRecord, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BoardingPassRecord), args.Error(1)
}

func (m *MockExtractionService) ExtractFromStorage(ctx context.Context, bucket, key string) (*domain.BoardingPassRecord, error) {
	args := m.Called(ctx, bucket, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BoardingPassRecord), args.Error(1)
}
