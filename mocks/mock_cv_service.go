package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"applykit/internal/domain"
	"applykit/internal/service"
)

// MockCVService is a mock implementation of service.CVService.
type MockCVService struct {
	mock.Mock
}

func (m *MockCVService) Extract(ctx context.Context, apiKey, rawText string) (*domain.ExtractedProfile, error) {
	args := m.Called(ctx, apiKey, rawText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedProfile), args.Error(1)
}

func (m *MockCVService) Curate(ctx context.Context, input service.CurateInput) (*domain.CuratedProfile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CuratedProfile), args.Error(1)
}
