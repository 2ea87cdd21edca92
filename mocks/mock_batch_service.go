package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/maximvlah/ntf/internal/domain"
)

// MockBatchService is a mock implementation of service.BatchService.
type MockBatchService struct {
	mock.Mock
}

func (m *MockBatchService) RunBatch(ctx context.Context, paths []string) (*domain.Job, error) {
	args := m.Called(ctx, paths)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
