package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"applykit/internal/service"
)

// MockAssistantService is a mock implementation of service.AssistantService.
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) Answer(ctx context.Context, input service.AnswerInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
