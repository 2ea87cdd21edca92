package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/maximvlah/ntf/internal/domain"
)

// MockJobRegistry is a mock implementation of port.JobRegistry.
type MockJobRegistry struct {
	mock.Mock
}

func (m *MockJobRegistry) Publish(job *domain.Job) {
	m.Called(job)
}

func (m *MockJobRegistry) Take(id uuid.UUID) (*domain.Job, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
