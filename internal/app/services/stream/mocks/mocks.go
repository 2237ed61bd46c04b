package mocks

import (
	"context"
	"time"

	"github.com/angristan/nebula-backend/internal/infra/repository/ytdlp"
	"github.com/stretchr/testify/mock"
)

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(ctx context.Context, req ytdlp.Request) (*ytdlp.Info, error) {
	args := m.Called(ctx, req)

	info, _ := args.Get(0).(*ytdlp.Info)
	return info, args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
