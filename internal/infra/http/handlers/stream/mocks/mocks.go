package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStreamService struct {
	mock.Mock
}

func (m *MockStreamService) Resolve(ctx context.Context, sourceURL string) (string, error) {
	args := m.Called(ctx, sourceURL)
	return args.String(0), args.Error(1)
}
