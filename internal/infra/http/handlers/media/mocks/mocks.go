package mocks

import (
	"context"

	"github.com/angristan/nebula-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Search(ctx context.Context, query string) []domain.Track {
	args := m.Called(ctx, query)

	tracks, _ := args.Get(0).([]domain.Track)
	return tracks
}

func (m *MockMediaService) UpNext(ctx context.Context, videoID string) []domain.Track {
	args := m.Called(ctx, videoID)

	tracks, _ := args.Get(0).([]domain.Track)
	return tracks
}

func (m *MockMediaService) TrackInfo(ctx context.Context, videoID string) domain.Track {
	args := m.Called(ctx, videoID)
	return args.Get(0).(domain.Track)
}
