package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"applykit/internal/prompt"
)

// MockOutreachService is a mock implementation of service.OutreachService.
type MockOutreachService struct {
	mock.Mock
}

func (m *MockOutreachService) AfterApplying(ctx context.Context, apiKey string, input prompt.AfterApplyingInput) (string, error) {
	args := m.Called(ctx, apiKey, input)
	return args.String(0), args.Error(1)
}

func (m *MockOutreachService) ExpandNetwork(ctx context.Context, apiKey string, input prompt.ExpandNetworkInput) (string, error) {
	args := m.Called(ctx, apiKey, input)
	return args.String(0), args.Error(1)
}
