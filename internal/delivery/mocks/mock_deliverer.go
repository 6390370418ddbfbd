package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Tazrian08/Organizer/internal/delivery"
)

type MockDeliverer struct {
	mock.Mock
}

func (m *MockDeliverer) Fetch(ctx context.Context, rawURL string) (*delivery.Result, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Result), args.Error(1)
}
