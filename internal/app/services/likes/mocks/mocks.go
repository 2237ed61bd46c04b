package mocks

import (
	"context"

	"github.com/angristan/nebula-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context) ([]domain.Track, error) {
	args := m.Called(ctx)

	tracks, _ := args.Get(0).([]domain.Track)
	return tracks, args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, tracks []domain.Track) error {
	args := m.Called(ctx, tracks)
	return args.Error(0)
}
