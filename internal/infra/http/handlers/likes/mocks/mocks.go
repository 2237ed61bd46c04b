package mocks

import (
	"context"

	applikes "github.com/angristan/nebula-backend/internal/app/services/likes"
	"github.com/angristan/nebula-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockLikesService struct {
	mock.Mock
}

func (m *MockLikesService) Toggle(ctx context.Context, track domain.Track) (applikes.ToggleResult, error) {
	args := m.Called(ctx, track)
	return args.Get(0).(applikes.ToggleResult), args.Error(1)
}

func (m *MockLikesService) All(ctx context.Context) []domain.Track {
	args := m.Called(ctx)

	tracks, _ := args.Get(0).([]domain.Track)
	return tracks
}
