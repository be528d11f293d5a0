package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"applykit/internal/domain"
)

// MockRenderService is a mock implementation of service.RenderService.
type MockRenderService struct {
	mock.Mock
}

func (m *MockRenderService) Preview(profile *domain.CuratedProfile, photo *domain.ProfilePhoto) (string, error) {
	args := m.Called(profile, photo)
	return args.String(0), args.Error(1)
}

func (m *MockRenderService) Render(ctx context.Context, profile *domain.CuratedProfile, photo *domain.ProfilePhoto) ([]byte, error) {
	args := m.Called(ctx, profile, photo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
