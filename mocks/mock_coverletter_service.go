package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"applykit/internal/service"
)

// MockCoverLetterService is a mock implementation of service.CoverLetterService.
type MockCoverLetterService struct {
	mock.Mock
}

func (m *MockCoverLetterService) Generate(ctx context.Context, input service.CoverLetterInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
