package mocks

import (
	"context"

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
